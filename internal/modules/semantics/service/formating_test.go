package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"indicator_semantics/internal/models"
)

func TestFormatSubject(t *testing.T) {
	assert.Equal(t, "price (close)", FormatSubject(models.PriceSubject("")))
	assert.Equal(t, "price (hl2)", FormatSubject(models.PriceSubject(models.SourceHL2)))
	assert.Equal(t, "histogram", FormatSubject(models.ComponentSubject("histogram")))
	assert.Equal(t, "%B", FormatSubject(models.DerivedSubject("percent-b", "%B")))
	assert.Equal(t, "percent-b", FormatSubject(models.DerivedSubject("percent-b", "")))
}

func TestFormatTarget(t *testing.T) {
	assert.Equal(t, "signal", FormatTarget(models.ComponentTarget("signal")))
	assert.Equal(t, "value [0..100]", FormatTarget(models.ValueBetween(0, 100, 1)))
	assert.Equal(t, "value [0..]", FormatTarget(models.ValueFrom(0, 0.001)))
	assert.Equal(t, "value", FormatTarget(models.ValueTarget()))
	assert.Equal(t, "zero line", FormatTarget(models.ZeroTarget()))
}

func TestFormatOperators(t *testing.T) {
	assert.Equal(t, "crosses above", FormatOperator(models.OpCrossesAbove))
	assert.Equal(t, ">=", FormatOperator(models.OpGreaterEq))
	assert.Equal(t, "crosses below, !=", FormatOperators(models.OperatorSet{models.OpCrossesBelow, models.OpNotEqual}))
}

func TestFormatCondition(t *testing.T) {
	assert.Equal(t, "RSI: line > 70", FormatCondition(models.Condition{
		Indicator: models.IndicatorRSI,
		Subject:   models.ComponentSubject("line"),
		Target:    models.ValueBetween(0, 100, 1),
		Operator:  models.OpGreater,
		Threshold: threshold(70),
	}))
	assert.Equal(t, "MACD: macd crosses above signal", FormatCondition(models.Condition{
		Indicator: models.IndicatorMACD,
		Subject:   models.ComponentSubject("macd"),
		Target:    models.ComponentTarget("signal"),
		Operator:  models.OpCrossesAbove,
	}))
	assert.Equal(t, "BB: %B crosses below value [-0.5..1.5]", FormatCondition(models.Condition{
		Indicator: models.IndicatorBB,
		Subject:   models.DerivedSubject("percent-b", "%B"),
		Target:    models.ValueBetween(-0.5, 1.5, 0.01),
		Operator:  models.OpCrossesBelow,
	}))
}
