package models

type PriceSource string

const (
	SourceClose PriceSource = "close"
	SourceOpen  PriceSource = "open"
	SourceHigh  PriceSource = "high"
	SourceLow   PriceSource = "low"
	SourceHL2   PriceSource = "hl2"
	SourceHLC3  PriceSource = "hlc3"
	SourceOHLC4 PriceSource = "ohlc4"
)

var PriceSources = []PriceSource{SourceClose, SourceOpen, SourceHigh, SourceLow, SourceHL2, SourceHLC3, SourceOHLC4}

// Valid: пустой источник тоже валиден, это значит close.
func (p PriceSource) Valid() bool {
	if p == "" {
		return true
	}
	for _, s := range PriceSources {
		if s == p {
			return true
		}
	}
	return false
}

// OrDefault подставляет close. Используется только при отображении.
func (p PriceSource) OrDefault() PriceSource {
	if p == "" {
		return SourceClose
	}
	return p
}

type SubjectKind string

const (
	SubjectPrice     SubjectKind = "price"
	SubjectComponent SubjectKind = "indicator-component"
	SubjectDerived   SubjectKind = "derived"
)

// Subject левая часть выражения.
// Source заполняется только для price, Component для indicator-component,
// ID и Label для derived.
type Subject struct {
	Kind      SubjectKind `yaml:"kind" json:"kind"`
	Source    PriceSource `yaml:"source,omitempty" json:"source,omitempty"`
	Component string      `yaml:"component,omitempty" json:"component,omitempty"`
	ID        string      `yaml:"id,omitempty" json:"id,omitempty"`
	Label     string      `yaml:"label,omitempty" json:"label,omitempty"`
}

func PriceSubject(src PriceSource) Subject {
	return Subject{Kind: SubjectPrice, Source: src}
}

func ComponentSubject(component string) Subject {
	return Subject{Kind: SubjectComponent, Component: component}
}

func DerivedSubject(id, label string) Subject {
	return Subject{Kind: SubjectDerived, ID: id, Label: label}
}

// Matches структурное сравнение subject'ов.
func (s Subject) Matches(other Subject) bool {
	if s.Kind != other.Kind {
		return false
	}
	switch s.Kind {
	case SubjectPrice:
		return samePrice(s, other)
	case SubjectComponent:
		return sameSubjectComponent(s, other)
	case SubjectDerived:
		return sameDerived(s, other)
	default:
		return false
	}
}

// источник цены на допустимость выражения не влияет
func samePrice(_, _ Subject) bool { return true }

func sameSubjectComponent(a, b Subject) bool { return a.Component == b.Component }

func sameDerived(a, b Subject) bool { return a.ID == b.ID }

type TargetKind string

const (
	TargetComponent TargetKind = "component"
	TargetValue     TargetKind = "value"
	TargetZero      TargetKind = "zero"
)

// Target правая часть выражения.
// Min/Max/Step: настройки поля ввода, в сравнении не участвуют.
type Target struct {
	Kind      TargetKind `yaml:"kind" json:"kind"`
	Component string     `yaml:"component,omitempty" json:"component,omitempty"`
	Min       *float64   `yaml:"min,omitempty" json:"min,omitempty"`
	Max       *float64   `yaml:"max,omitempty" json:"max,omitempty"`
	Step      *float64   `yaml:"step,omitempty" json:"step,omitempty"`
}

func ComponentTarget(component string) Target {
	return Target{Kind: TargetComponent, Component: component}
}

func ValueTarget() Target {
	return Target{Kind: TargetValue}
}

func ValueBetween(min, max, step float64) Target {
	return Target{Kind: TargetValue, Min: &min, Max: &max, Step: &step}
}

func ValueFrom(min, step float64) Target {
	return Target{Kind: TargetValue, Min: &min, Step: &step}
}

func ZeroTarget() Target {
	return Target{Kind: TargetZero}
}

func (t Target) Matches(other Target) bool {
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case TargetComponent:
		return sameTargetComponent(t, other)
	case TargetValue:
		return sameValue(t, other)
	case TargetZero:
		return sameZero(t, other)
	default:
		return false
	}
}

func sameTargetComponent(a, b Target) bool { return a.Component == b.Component }

// границы value не часть идентичности
func sameValue(_, _ Target) bool { return true }

func sameZero(_, _ Target) bool { return true }

func (t Target) Clone() Target {
	out := t
	out.Min = clonePtr(t.Min)
	out.Max = clonePtr(t.Max)
	out.Step = clonePtr(t.Step)
	return out
}

func clonePtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
