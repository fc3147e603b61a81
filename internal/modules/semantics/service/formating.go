package service

import (
	"fmt"
	"strings"

	"indicator_semantics/internal/helper"
	"indicator_semantics/internal/models"
)

func FormatSubject(s models.Subject) string {
	switch s.Kind {
	case models.SubjectPrice:
		return fmt.Sprintf("price (%s)", s.Source.OrDefault())
	case models.SubjectComponent:
		return s.Component
	case models.SubjectDerived:
		if s.Label != "" {
			return s.Label
		}
		return s.ID
	default:
		return string(s.Kind)
	}
}

func FormatTarget(t models.Target) string {
	switch t.Kind {
	case models.TargetComponent:
		return t.Component
	case models.TargetValue:
		return "value" + formatBounds(t)
	case models.TargetZero:
		return "zero line"
	default:
		return string(t.Kind)
	}
}

func formatBounds(t models.Target) string {
	if t.Min == nil && t.Max == nil {
		return ""
	}
	lo, hi := "", ""
	if t.Min != nil {
		lo = helper.F2(*t.Min)
	}
	if t.Max != nil {
		hi = helper.F2(*t.Max)
	}
	return " [" + lo + ".." + hi + "]"
}

func FormatOperator(op models.Operator) string {
	if op.Crossing() {
		return strings.ReplaceAll(string(op), "-", " ")
	}
	return string(op)
}

func FormatOperators(ops models.OperatorSet) string {
	parts := make([]string, 0, len(ops))
	for _, op := range ops {
		parts = append(parts, FormatOperator(op))
	}
	return strings.Join(parts, ", ")
}

// FormatCondition: "RSI: line > 70", "MACD: macd crosses above signal".
func FormatCondition(c models.Condition) string {
	rhs := FormatTarget(c.Target)
	if c.Target.Kind == models.TargetValue && c.Threshold != nil {
		rhs = helper.F2(*c.Threshold)
	}
	return fmt.Sprintf("%s: %s %s %s", c.Indicator, FormatSubject(c.Subject), FormatOperator(c.Operator), rhs)
}
