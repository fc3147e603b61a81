package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"indicator_semantics/internal/models"
	"indicator_semantics/internal/modules/semantics/service"
	"indicator_semantics/pkg/logger"
)

type indicatorRow struct {
	ID    models.IndicatorID `yaml:"id" json:"id"`
	Label string             `yaml:"label" json:"label"`
}

func indicatorsCmd(configPath, format *string) *cobra.Command {
	return &cobra.Command{
		Use:   "indicators",
		Short: "List known indicators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(*configPath, func(d deps) error {
				rows := make([]indicatorRow, 0, len(d.reg.Indicators()))
				for _, id := range d.reg.Indicators() {
					s, _ := d.reg.Semantics(id)
					rows = append(rows, indicatorRow{ID: id, Label: s.Label})
				}
				return render(cmd.OutOrStdout(), outputFormat(*format, d.cfg), rows, func(w io.Writer) {
					for _, r := range rows {
						fmt.Fprintf(w, "%s\t%s\n", r.ID, r.Label)
					}
				})
			})
		},
	}
}

func subjectsCmd(configPath, format *string) *cobra.Command {
	return &cobra.Command{
		Use:   "subjects <indicator>",
		Short: "List valid subjects of an indicator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(*configPath, func(d deps) error {
				id, err := knownIndicator(d, args[0])
				if err != nil {
					return err
				}
				subjects := d.reg.Subjects(id)
				return render(cmd.OutOrStdout(), outputFormat(*format, d.cfg), subjects, func(w io.Writer) {
					for _, s := range subjects {
						fmt.Fprintf(w, "%s\t%s\n", service.SubjectString(s), service.FormatSubject(s))
					}
				})
			})
		},
	}
}

func targetsCmd(configPath, format *string) *cobra.Command {
	return &cobra.Command{
		Use:   "targets <indicator> <subject>",
		Short: "List targets a subject may be compared with",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(*configPath, func(d deps) error {
				id, err := knownIndicator(d, args[0])
				if err != nil {
					return err
				}
				subject, err := service.ParseSubject(args[1])
				if err != nil {
					return err
				}
				targets := d.reg.Targets(id, subject)
				if len(targets) == 0 {
					return fmt.Errorf("%w: %s has no %s", service.ErrSubjectNotAllowed, id, args[1])
				}
				return render(cmd.OutOrStdout(), outputFormat(*format, d.cfg), targets, func(w io.Writer) {
					for _, tr := range targets {
						fmt.Fprintf(w, "%s\t%s\t%s\n",
							service.TargetString(tr.Target), service.FormatTarget(tr.Target), service.FormatOperators(tr.Operators))
					}
				})
			})
		},
	}
}

func operatorsCmd(configPath, format *string) *cobra.Command {
	return &cobra.Command{
		Use:   "operators <indicator> <subject> <target>",
		Short: "List operators allowed for a subject/target pair",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(*configPath, func(d deps) error {
				id, err := knownIndicator(d, args[0])
				if err != nil {
					return err
				}
				subject, err := service.ParseSubject(args[1])
				if err != nil {
					return err
				}
				target, err := service.ParseTarget(args[2])
				if err != nil {
					return err
				}
				ops := d.reg.Operators(id, subject, target)
				if len(ops) == 0 {
					return fmt.Errorf("%w: %s %s vs %s", service.ErrTargetNotAllowed, id, args[1], args[2])
				}
				return render(cmd.OutOrStdout(), outputFormat(*format, d.cfg), ops, func(w io.Writer) {
					for _, op := range ops {
						fmt.Fprintln(w, op)
					}
				})
			})
		},
	}
}

func exportCmd(configPath, format *string) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Dump the whole normalized schema (yaml or json)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(*configPath, func(d deps) error {
				f := outputFormat(*format, d.cfg)
				if f == "text" {
					f = service.FormatYAML
				}
				return service.Export(cmd.OutOrStdout(), d.reg, f)
			})
		},
	}
}

func checkCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "check <rules.yaml>",
		Short: "Validate a bot's entry/exit conditions against the schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(*configPath, func(d deps) error {
				rs, err := service.LoadRuleSet(args[0])
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				report := func(section string, list []models.Condition) {
					for i, c := range list {
						status := "ok"
						if err := d.reg.Validate(c); err != nil {
							status = "FAIL"
						}
						fmt.Fprintf(w, "%s\t%s[%d]\t%s\n", status, section, i, service.FormatCondition(c))
					}
				}
				report("entry", rs.Entry)
				report("exit", rs.Exit)

				if err := d.reg.ValidateRuleSet(rs); err != nil {
					logger.Error("rule set %q rejected: %v", rs.Name, err)
					return err
				}
				logger.Info("rule set %q: %d conditions ok", rs.Name, len(rs.Entry)+len(rs.Exit))
				return nil
			})
		},
	}
}

func knownIndicator(d deps, raw string) (models.IndicatorID, error) {
	id := service.ParseIndicator(raw)
	if _, ok := d.reg.Semantics(id); !ok {
		return "", fmt.Errorf("%w: %q", service.ErrUnknownIndicator, raw)
	}
	return id, nil
}

func render(w io.Writer, format string, v any, text func(w io.Writer)) error {
	if format == "text" {
		text(w)
		return nil
	}
	return service.Encode(w, v, format)
}
