package models

// IndicatorID идентификатор индикатора из закрытого набора.
type IndicatorID string

const (
	IndicatorRSI  IndicatorID = "RSI"
	IndicatorEMA  IndicatorID = "EMA"
	IndicatorBB   IndicatorID = "BB"
	IndicatorMACD IndicatorID = "MACD"
	IndicatorADX  IndicatorID = "ADX"
	IndicatorDI   IndicatorID = "DI"
	IndicatorVWAP IndicatorID = "VWAP"
)

// KnownIndicators в порядке, в котором их показывает rule-builder.
var KnownIndicators = []IndicatorID{
	IndicatorRSI,
	IndicatorEMA,
	IndicatorBB,
	IndicatorMACD,
	IndicatorADX,
	IndicatorDI,
	IndicatorVWAP,
}

func (id IndicatorID) Known() bool {
	for _, k := range KnownIndicators {
		if k == id {
			return true
		}
	}
	return false
}

// IndicatorSemantics описывает все допустимые выражения для одного индикатора.
type IndicatorSemantics struct {
	ID       IndicatorID `yaml:"id" json:"id"`
	Label    string      `yaml:"label" json:"label"`
	Pairings []Pairing   `yaml:"pairings" json:"pairings"`
}

// Pairing: для Subject доступны эти Targets, для каждого Target: свои операторы.
type Pairing struct {
	Subject Subject      `yaml:"subject" json:"subject"`
	Targets []TargetRule `yaml:"targets" json:"targets"`
}

type TargetRule struct {
	Target    Target      `yaml:"target" json:"target"`
	Operators OperatorSet `yaml:"operators" json:"operators"`
}

func (s IndicatorSemantics) Clone() IndicatorSemantics {
	out := IndicatorSemantics{ID: s.ID, Label: s.Label}
	if s.Pairings != nil {
		out.Pairings = make([]Pairing, len(s.Pairings))
		for i, p := range s.Pairings {
			out.Pairings[i] = p.Clone()
		}
	}
	return out
}

func (p Pairing) Clone() Pairing {
	out := Pairing{Subject: p.Subject}
	if p.Targets != nil {
		out.Targets = make([]TargetRule, len(p.Targets))
		for i, tr := range p.Targets {
			out.Targets[i] = tr.Clone()
		}
	}
	return out
}

func (tr TargetRule) Clone() TargetRule {
	return TargetRule{Target: tr.Target.Clone(), Operators: tr.Operators.Clone()}
}

// Condition кандидат в правило входа/выхода бота.
// Threshold нужен только для target типа value.
type Condition struct {
	Indicator IndicatorID `yaml:"indicator" json:"indicator"`
	Subject   Subject     `yaml:"subject" json:"subject"`
	Target    Target      `yaml:"target" json:"target"`
	Operator  Operator    `yaml:"operator" json:"operator"`
	Threshold *float64    `yaml:"threshold,omitempty" json:"threshold,omitempty"`
}

// RuleSet набор условий входа и выхода одного бота.
type RuleSet struct {
	Name  string      `yaml:"name" json:"name"`
	Entry []Condition `yaml:"entry" json:"entry"`
	Exit  []Condition `yaml:"exit" json:"exit"`
}
