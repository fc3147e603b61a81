package service

import (
	"fmt"
	"strings"

	"indicator_semantics/internal/helper"
	"indicator_semantics/internal/models"
)

// Короткая запись для CLI:
//   subject: price, price:open, component:macd, derived:percent-b
//   target:  component:signal, value, zero

func ParseIndicator(raw string) models.IndicatorID {
	return models.IndicatorID(helper.NormIndicator(raw))
}

func ParseSubject(raw string) (models.Subject, error) {
	kind, val := helper.SplitKindValue(raw)
	switch kind {
	case "price":
		src := models.PriceSource(helper.NormKey(val))
		if !src.Valid() {
			return models.Subject{}, fmt.Errorf("%w: unknown price source %q", ErrBadNotation, val)
		}
		return models.PriceSubject(src), nil
	case "component", "indicator-component":
		if val == "" {
			return models.Subject{}, fmt.Errorf("%w: %q needs a component name", ErrBadNotation, raw)
		}
		return models.ComponentSubject(strings.ToLower(val)), nil
	case "derived":
		if val == "" {
			return models.Subject{}, fmt.Errorf("%w: %q needs an id", ErrBadNotation, raw)
		}
		return models.DerivedSubject(helper.NormKey(val), ""), nil
	default:
		return models.Subject{}, fmt.Errorf("%w: unknown subject %q", ErrBadNotation, raw)
	}
}

func ParseTarget(raw string) (models.Target, error) {
	kind, val := helper.SplitKindValue(raw)
	switch kind {
	case "component":
		if val == "" {
			return models.Target{}, fmt.Errorf("%w: %q needs a component name", ErrBadNotation, raw)
		}
		return models.ComponentTarget(strings.ToLower(val)), nil
	case "value":
		return models.ValueTarget(), nil
	case "zero":
		return models.ZeroTarget(), nil
	default:
		return models.Target{}, fmt.Errorf("%w: unknown target %q", ErrBadNotation, raw)
	}
}

func ParseOperator(raw string) (models.Operator, error) {
	s := helper.NormKey(raw)
	s = strings.ReplaceAll(s, " ", "-")
	switch s {
	case "==":
		s = "="
	case "<>":
		s = "!="
	case "cross-above", "crossover":
		s = string(models.OpCrossesAbove)
	case "cross-below", "crossunder":
		s = string(models.OpCrossesBelow)
	}
	op := models.Operator(s)
	if !op.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownOperator, raw)
	}
	return op, nil
}

// SubjectString обратна ParseSubject.
func SubjectString(s models.Subject) string {
	switch s.Kind {
	case models.SubjectPrice:
		if s.Source == "" {
			return "price"
		}
		return "price:" + string(s.Source)
	case models.SubjectComponent:
		return "component:" + s.Component
	case models.SubjectDerived:
		return "derived:" + s.ID
	default:
		return string(s.Kind)
	}
}

// TargetString обратна ParseTarget. Границы value не выводятся.
func TargetString(t models.Target) string {
	if t.Kind == models.TargetComponent {
		return "component:" + t.Component
	}
	return string(t.Kind)
}
