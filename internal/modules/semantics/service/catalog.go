package service

import "indicator_semantics/internal/models"

var (
	// все сравнения + пересечения
	opsAll = models.OperatorSet{
		models.OpGreater, models.OpLess, models.OpGreaterEq, models.OpLessEq,
		models.OpEqual, models.OpNotEqual,
		models.OpCrossesAbove, models.OpCrossesBelow,
	}
	// линия против линии: точное равенство не проверяем
	opsCross = models.OperatorSet{
		models.OpCrossesAbove, models.OpCrossesBelow,
		models.OpGreater, models.OpLess, models.OpGreaterEq, models.OpLessEq,
	}
	opsCompare = models.OperatorSet{
		models.OpGreater, models.OpLess, models.OpGreaterEq, models.OpLessEq,
	}
	opsZeroLine = models.OperatorSet{
		models.OpCrossesAbove, models.OpCrossesBelow, models.OpGreater, models.OpLess,
	}
)

// Catalog возвращает встроенную схему для семи индикаторов.
// Каждый вызов отдаёт новый срез, вызывающий может его менять.
//
// MACD объявлен так же, как в исходной схеме дашборда: macd -> signal/zero
// одной записью и ещё раз двумя отдельными. Реестр склеивает такие записи.
func Catalog() []models.IndicatorSemantics {
	return []models.IndicatorSemantics{
		{
			ID:    models.IndicatorRSI,
			Label: "Relative Strength Index",
			Pairings: []models.Pairing{
				{
					Subject: models.ComponentSubject("line"),
					Targets: []models.TargetRule{
						{Target: models.ValueBetween(0, 100, 1), Operators: opsAll.Clone()},
					},
				},
			},
		},
		{
			ID:    models.IndicatorEMA,
			Label: "Exponential Moving Average",
			Pairings: []models.Pairing{
				{
					Subject: models.PriceSubject(models.SourceClose),
					Targets: []models.TargetRule{
						{Target: models.ComponentTarget("line"), Operators: opsCross.Clone()},
					},
				},
			},
		},
		{
			ID:    models.IndicatorBB,
			Label: "Bollinger Bands",
			Pairings: []models.Pairing{
				{
					Subject: models.PriceSubject(models.SourceClose),
					Targets: []models.TargetRule{
						{Target: models.ComponentTarget("upper"), Operators: opsCross.Clone()},
						{Target: models.ComponentTarget("middle"), Operators: opsCross.Clone()},
						{Target: models.ComponentTarget("lower"), Operators: opsCross.Clone()},
					},
				},
				{
					Subject: models.DerivedSubject("percent-b", "%B"),
					Targets: []models.TargetRule{
						{Target: models.ValueBetween(-0.5, 1.5, 0.01), Operators: opsCross.Clone()},
					},
				},
				{
					Subject: models.DerivedSubject("bandwidth", "Bandwidth"),
					Targets: []models.TargetRule{
						{Target: models.ValueFrom(0, 0.001), Operators: opsCompare.Clone()},
					},
				},
			},
		},
		{
			ID:    models.IndicatorMACD,
			Label: "MACD",
			Pairings: []models.Pairing{
				{
					Subject: models.ComponentSubject("macd"),
					Targets: []models.TargetRule{
						{Target: models.ComponentTarget("signal"), Operators: opsCross.Clone()},
						{Target: models.ZeroTarget(), Operators: opsZeroLine.Clone()},
					},
				},
				{
					Subject: models.ComponentSubject("macd"),
					Targets: []models.TargetRule{
						{Target: models.ComponentTarget("signal"), Operators: opsCross.Clone()},
					},
				},
				{
					Subject: models.ComponentSubject("macd"),
					Targets: []models.TargetRule{
						{Target: models.ZeroTarget(), Operators: opsZeroLine.Clone()},
					},
				},
				{
					Subject: models.ComponentSubject("histogram"),
					Targets: []models.TargetRule{
						{Target: models.ZeroTarget(), Operators: opsZeroLine.Clone()},
					},
				},
				{
					Subject: models.ComponentSubject("signal"),
					Targets: []models.TargetRule{
						{Target: models.ZeroTarget(), Operators: opsZeroLine.Clone()},
					},
				},
			},
		},
		{
			ID:    models.IndicatorADX,
			Label: "Average Directional Index",
			Pairings: []models.Pairing{
				{
					Subject: models.ComponentSubject("adx"),
					Targets: []models.TargetRule{
						{Target: models.ValueBetween(0, 100, 1), Operators: opsCross.Clone()},
					},
				},
			},
		},
		{
			ID:    models.IndicatorDI,
			Label: "Directional Index",
			Pairings: []models.Pairing{
				{
					Subject: models.ComponentSubject("+di"),
					Targets: []models.TargetRule{
						{Target: models.ComponentTarget("-di"), Operators: opsCross.Clone()},
						{Target: models.ValueBetween(0, 100, 1), Operators: opsCross.Clone()},
					},
				},
				{
					Subject: models.ComponentSubject("-di"),
					Targets: []models.TargetRule{
						{Target: models.ComponentTarget("+di"), Operators: opsCross.Clone()},
						{Target: models.ValueBetween(0, 100, 1), Operators: opsCross.Clone()},
					},
				},
			},
		},
		{
			ID:    models.IndicatorVWAP,
			Label: "Volume Weighted Average Price",
			Pairings: []models.Pairing{
				{
					Subject: models.PriceSubject(models.SourceClose),
					Targets: []models.TargetRule{
						{Target: models.ComponentTarget("vwap"), Operators: opsCross.Clone()},
					},
				},
			},
		},
	}
}
