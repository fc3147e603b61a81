package models

type Operator string

const (
	OpGreater      Operator = ">"
	OpLess         Operator = "<"
	OpGreaterEq    Operator = ">="
	OpLessEq       Operator = "<="
	OpEqual        Operator = "="
	OpNotEqual     Operator = "!="
	OpCrossesAbove Operator = "crosses-above"
	OpCrossesBelow Operator = "crosses-below"
)

var AllOperators = []Operator{
	OpGreater,
	OpLess,
	OpGreaterEq,
	OpLessEq,
	OpEqual,
	OpNotEqual,
	OpCrossesAbove,
	OpCrossesBelow,
}

func (o Operator) Valid() bool {
	for _, k := range AllOperators {
		if k == o {
			return true
		}
	}
	return false
}

// Crossing == true для операторов, которым нужны две соседние свечи.
func (o Operator) Crossing() bool {
	return o == OpCrossesAbove || o == OpCrossesBelow
}

// OperatorSet хранит порядок объявления (для UI), но сравнивается как множество.
type OperatorSet []Operator

func (s OperatorSet) Contains(op Operator) bool {
	for _, o := range s {
		if o == op {
			return true
		}
	}
	return false
}

// Equal сравнивает как множества, порядок не важен.
func (s OperatorSet) Equal(other OperatorSet) bool {
	if len(s.Union(nil)) != len(other.Union(nil)) {
		return false
	}
	for _, o := range other {
		if !s.Contains(o) {
			return false
		}
	}
	return true
}

// Union возвращает новый набор: сначала s, затем отсутствующие операторы из other.
// Дубли отбрасываются.
func (s OperatorSet) Union(other OperatorSet) OperatorSet {
	out := make(OperatorSet, 0, len(s)+len(other))
	for _, o := range s {
		if !out.Contains(o) {
			out = append(out, o)
		}
	}
	for _, o := range other {
		if !out.Contains(o) {
			out = append(out, o)
		}
	}
	return out
}

func (s OperatorSet) Clone() OperatorSet {
	if s == nil {
		return nil
	}
	out := make(OperatorSet, len(s))
	copy(out, s)
	return out
}
