package service

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"indicator_semantics/internal/models"
)

type RegistryOptions struct {
	// true: одинаковый subject в двух pairing'ах: ошибка построения.
	// false: target'ы таких pairing'ов склеиваются.
	RejectDuplicateSubjects bool
}

// Registry неизменяемая схема выражений. После NewRegistry не меняется,
// поэтому читать можно из любого числа горутин без блокировок.
type Registry struct {
	order []models.IndicatorID
	byID  map[models.IndicatorID]models.IndicatorSemantics
	log   *zap.Logger
}

// NewRegistry копирует определения, проверяет их и нормализует.
// Все найденные ошибки возвращаются разом.
func NewRegistry(defs []models.IndicatorSemantics, opts RegistryOptions, log *zap.Logger) (*Registry, error) {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Registry{
		byID: make(map[models.IndicatorID]models.IndicatorSemantics, len(defs)),
		log:  log,
	}

	var errs error
	declared := make(map[models.IndicatorID]bool, len(defs))
	for _, def := range defs {
		declared[def.ID] = true
		if _, dup := r.byID[def.ID]; dup {
			errs = multierr.Append(errs, fmt.Errorf("%w: indicator %s declared twice", ErrInvalidSchema, def.ID))
			continue
		}
		if err := validateSemantics(def); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		norm, err := r.normalize(def.Clone(), opts)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		r.byID[norm.ID] = norm
		r.order = append(r.order, norm.ID)
	}
	// у каждого индикатора из закрытого набора должны быть subject'ы
	for _, id := range models.KnownIndicators {
		if !declared[id] {
			errs = multierr.Append(errs, fmt.Errorf("%w: indicator %s not declared", ErrInvalidSchema, id))
		}
	}
	if errs != nil {
		return nil, errs
	}

	r.log.Debug("semantics registry built", zap.Int("indicators", len(r.order)))
	return r, nil
}

// normalize оставляет по одному pairing'у на каждый уникальный subject.
func (r *Registry) normalize(def models.IndicatorSemantics, opts RegistryOptions) (models.IndicatorSemantics, error) {
	out := models.IndicatorSemantics{ID: def.ID, Label: def.Label}

	for i, p := range def.Pairings {
		idx := -1
		for j := range out.Pairings {
			if out.Pairings[j].Subject.Matches(p.Subject) {
				idx = j
				break
			}
		}
		if idx < 0 {
			merged := models.Pairing{Subject: p.Subject}
			for _, tr := range p.Targets {
				merged.Targets, _ = mergeTarget(merged.Targets, tr)
			}
			out.Pairings = append(out.Pairings, merged)
			continue
		}

		if opts.RejectDuplicateSubjects {
			return models.IndicatorSemantics{}, fmt.Errorf("%w: %s pairing %d: subject %s already declared",
				ErrInvalidSchema, def.ID, i, SubjectString(p.Subject))
		}

		conflict := false
		for _, tr := range p.Targets {
			var c bool
			out.Pairings[idx].Targets, c = mergeTarget(out.Pairings[idx].Targets, tr)
			conflict = conflict || c
		}
		fields := []zap.Field{
			zap.String("indicator", string(def.ID)),
			zap.String("subject", SubjectString(p.Subject)),
			zap.Int("pairing", i),
		}
		if conflict {
			r.log.Warn("duplicate subject declares different operators, merged as union", fields...)
		} else {
			r.log.Debug("duplicate subject merged", fields...)
		}
	}
	return out, nil
}

// mergeTarget добавляет tr в список. Если такой target уже есть, операторы объединяются.
// conflict == true, когда наборы операторов различались.
func mergeTarget(list []models.TargetRule, tr models.TargetRule) ([]models.TargetRule, bool) {
	for i := range list {
		if !list[i].Target.Matches(tr.Target) {
			continue
		}
		conflict := !list[i].Operators.Equal(tr.Operators)
		list[i].Operators = list[i].Operators.Union(tr.Operators)
		return list, conflict
	}
	return append(list, tr.Clone()), false
}

// Semantics: ok == false для неизвестного id. Возвращается копия.
func (r *Registry) Semantics(id models.IndicatorID) (models.IndicatorSemantics, bool) {
	s, ok := r.byID[id]
	if !ok {
		return models.IndicatorSemantics{}, false
	}
	return s.Clone(), true
}

func (r *Registry) Indicators() []models.IndicatorID {
	out := make([]models.IndicatorID, len(r.order))
	copy(out, r.order)
	return out
}

// Subjects в порядке объявления. Первый идёт выбором по умолчанию в UI.
func (r *Registry) Subjects(id models.IndicatorID) []models.Subject {
	s, ok := r.byID[id]
	if !ok {
		return []models.Subject{}
	}
	out := make([]models.Subject, 0, len(s.Pairings))
	for _, p := range s.Pairings {
		out = append(out, p.Subject)
	}
	return out
}

// Targets собирает target'ы со всех pairing'ов, чей subject совпадает с заданным,
// а не только с первого найденного.
func (r *Registry) Targets(id models.IndicatorID, subject models.Subject) []models.TargetRule {
	out := []models.TargetRule{}
	s, ok := r.byID[id]
	if !ok {
		return out
	}
	for _, p := range s.Pairings {
		if !p.Subject.Matches(subject) {
			continue
		}
		for _, tr := range p.Targets {
			out, _ = mergeTarget(out, tr)
		}
	}
	return out
}

// Operators: пустой набор == пара subject/target запрещена.
func (r *Registry) Operators(id models.IndicatorID, subject models.Subject, target models.Target) models.OperatorSet {
	for _, tr := range r.Targets(id, subject) {
		if tr.Target.Matches(target) {
			return tr.Operators
		}
	}
	return models.OperatorSet{}
}

func validateSemantics(def models.IndicatorSemantics) error {
	var errs error
	fail := func(format string, args ...any) {
		errs = multierr.Append(errs, fmt.Errorf("%w: %s: %s", ErrInvalidSchema, def.ID, fmt.Sprintf(format, args...)))
	}

	if !def.ID.Known() {
		return fmt.Errorf("%w: %w %q", ErrInvalidSchema, ErrUnknownIndicator, def.ID)
	}
	if def.Label == "" {
		fail("empty label")
	}
	if len(def.Pairings) == 0 {
		fail("no pairings")
	}
	for i, p := range def.Pairings {
		if err := validateSubject(p.Subject); err != nil {
			fail("pairing %d: %v", i, err)
		}
		if len(p.Targets) == 0 {
			fail("pairing %d: no targets", i)
		}
		for j, tr := range p.Targets {
			if err := validateTarget(tr.Target); err != nil {
				fail("pairing %d target %d: %v", i, j, err)
			}
			if len(tr.Operators) == 0 {
				fail("pairing %d target %d: empty operator set", i, j)
			}
			for _, op := range tr.Operators {
				if !op.Valid() {
					fail("pairing %d target %d: unknown operator %q", i, j, op)
				}
			}
		}
	}
	return errs
}

func validateSubject(s models.Subject) error {
	switch s.Kind {
	case models.SubjectPrice:
		if !s.Source.Valid() {
			return fmt.Errorf("unknown price source %q", s.Source)
		}
	case models.SubjectComponent:
		if s.Component == "" {
			return fmt.Errorf("indicator-component subject without component")
		}
	case models.SubjectDerived:
		if s.ID == "" {
			return fmt.Errorf("derived subject without id")
		}
	default:
		return fmt.Errorf("unknown subject kind %q", s.Kind)
	}
	return nil
}

func validateTarget(t models.Target) error {
	switch t.Kind {
	case models.TargetComponent:
		if t.Component == "" {
			return fmt.Errorf("component target without component")
		}
	case models.TargetValue:
		if t.Min != nil && t.Max != nil && *t.Min > *t.Max {
			return fmt.Errorf("value bounds min %v > max %v", *t.Min, *t.Max)
		}
		if t.Step != nil && *t.Step <= 0 {
			return fmt.Errorf("value step must be positive, got %v", *t.Step)
		}
	case models.TargetZero:
	default:
		return fmt.Errorf("unknown target kind %q", t.Kind)
	}
	return nil
}
