package service

import (
	"io"
	"os"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"indicator_semantics/internal/models"
)

const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// catalogDoc формат файла схемы. Export пишет его, LoadCatalog читает.
type catalogDoc struct {
	Indicators []models.IndicatorSemantics `yaml:"indicators" json:"indicators"`
}

// Export пишет нормализованную схему целиком (для UI rule-builder'а).
func Export(w io.Writer, reg *Registry, format string) error {
	doc := catalogDoc{Indicators: make([]models.IndicatorSemantics, 0, len(reg.order))}
	for _, id := range reg.Indicators() {
		s, _ := reg.Semantics(id)
		doc.Indicators = append(doc.Indicators, s)
	}
	return Encode(w, doc, format)
}

// Encode пишет v в yaml или json.
func Encode(w io.Writer, v any, format string) error {
	var (
		bs  []byte
		err error
	)
	switch format {
	case FormatYAML:
		bs, err = yaml.Marshal(v)
	case FormatJSON:
		bs, err = sonic.ConfigDefault.MarshalIndent(v, "", "  ")
		bs = append(bs, '\n')
	default:
		return errors.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return errors.Wrap(err, "marshal "+format)
	}
	if _, err = w.Write(bs); err != nil {
		return errors.Wrap(err, "write output")
	}
	return nil
}

// LoadCatalog читает схему из yaml-файла (формат Export).
func LoadCatalog(path string) ([]models.IndicatorSemantics, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read catalog %s", path)
	}
	return ParseCatalog(bs)
}

func ParseCatalog(bs []byte) ([]models.IndicatorSemantics, error) {
	var doc catalogDoc
	if err := yaml.UnmarshalStrict(bs, &doc); err != nil {
		return nil, errors.Wrap(err, "decode catalog")
	}
	return doc.Indicators, nil
}

// LoadRuleSet читает правила входа/выхода бота из yaml.
func LoadRuleSet(path string) (models.RuleSet, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return models.RuleSet{}, errors.Wrapf(err, "read rule set %s", path)
	}
	return ParseRuleSet(bs)
}

func ParseRuleSet(bs []byte) (models.RuleSet, error) {
	var rs models.RuleSet
	if err := yaml.UnmarshalStrict(bs, &rs); err != nil {
		return models.RuleSet{}, errors.Wrap(err, "decode rule set")
	}
	for _, list := range [][]models.Condition{rs.Entry, rs.Exit} {
		for i := range list {
			list[i].Indicator = ParseIndicator(string(list[i].Indicator))
			// нераспознанный оператор оставляем как есть, его отклонит Validate
			if op, err := ParseOperator(string(list[i].Operator)); err == nil {
				list[i].Operator = op
			}
		}
	}
	return rs, nil
}
