package service

import (
	"fmt"

	"go.uber.org/multierr"

	"indicator_semantics/internal/models"
)

// Validate проверяет одно условие против схемы. Ошибки оборачивают
// ErrUnknownIndicator, ErrUnknownOperator, ErrSubjectNotAllowed,
// ErrTargetNotAllowed, ErrOperatorNotAllowed, ErrMissingThreshold или ErrMalformedCondition.
func (r *Registry) Validate(c models.Condition) error {
	if err := validateSubject(c.Subject); err != nil {
		return fmt.Errorf("%w: subject: %v", ErrMalformedCondition, err)
	}
	if err := validateTarget(c.Target); err != nil {
		return fmt.Errorf("%w: target: %v", ErrMalformedCondition, err)
	}
	if _, ok := r.byID[c.Indicator]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownIndicator, c.Indicator)
	}
	if !c.Operator.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownOperator, c.Operator)
	}

	targets := r.Targets(c.Indicator, c.Subject)
	if len(targets) == 0 {
		return fmt.Errorf("%w: %s has no %s", ErrSubjectNotAllowed, c.Indicator, SubjectString(c.Subject))
	}

	var ops models.OperatorSet
	found := false
	for _, tr := range targets {
		if tr.Target.Matches(c.Target) {
			ops, found = tr.Operators, true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: %s %s cannot be compared with %s",
			ErrTargetNotAllowed, c.Indicator, SubjectString(c.Subject), TargetString(c.Target))
	}
	if !ops.Contains(c.Operator) {
		return fmt.Errorf("%w: %s %s %s %s",
			ErrOperatorNotAllowed, c.Indicator, SubjectString(c.Subject), c.Operator, TargetString(c.Target))
	}
	if c.Target.Kind == models.TargetValue && c.Threshold == nil {
		return fmt.Errorf("%w: %s %s %s", ErrMissingThreshold, c.Indicator, SubjectString(c.Subject), c.Operator)
	}
	return nil
}

// ValidateRuleSet проверяет все условия и возвращает все ошибки,
// каждая с префиксом entry[i] / exit[i].
func (r *Registry) ValidateRuleSet(rs models.RuleSet) error {
	var errs error
	for i, c := range rs.Entry {
		if err := r.Validate(c); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("entry[%d]: %w", i, err))
		}
	}
	for i, c := range rs.Exit {
		if err := r.Validate(c); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("exit[%d]: %w", i, err))
		}
	}
	return errs
}
