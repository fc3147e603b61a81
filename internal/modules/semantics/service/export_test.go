package service

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"indicator_semantics/internal/models"
)

func TestExportYAMLReloadsToSameRegistry(t *testing.T) {
	reg := newDefaultRegistry(t)

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, reg, FormatYAML))

	defs, err := ParseCatalog(buf.Bytes())
	require.NoError(t, err)

	// export is normalized, so strict mode accepts it
	reloaded, err := NewRegistry(defs, RegistryOptions{RejectDuplicateSubjects: true}, nil)
	require.NoError(t, err)

	require.Equal(t, reg.Indicators(), reloaded.Indicators())
	for _, id := range reg.Indicators() {
		want, _ := reg.Semantics(id)
		got, _ := reloaded.Semantics(id)
		assert.Equal(t, want, got, id)
	}
}

func TestExportJSON(t *testing.T) {
	reg := newDefaultRegistry(t)

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, reg, FormatJSON))

	var doc catalogDoc
	require.NoError(t, sonic.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Indicators, len(models.KnownIndicators))

	ema := doc.Indicators[1]
	assert.Equal(t, models.IndicatorEMA, ema.ID)
	assert.Equal(t, models.SubjectPrice, ema.Pairings[0].Subject.Kind)
	assert.Equal(t, "line", ema.Pairings[0].Targets[0].Target.Component)
	assert.Contains(t, buf.String(), `"crosses-above"`)
}

func TestExportUnknownFormat(t *testing.T) {
	reg := newDefaultRegistry(t)
	assert.Error(t, Export(&bytes.Buffer{}, reg, "toml"))
}

func TestParseCatalogRejectsUnknownFields(t *testing.T) {
	_, err := ParseCatalog([]byte("indicators:\n  - id: RSI\n    colour: red\n"))
	assert.Error(t, err)
}

func TestLoadRuleSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: rsi-reversal
entry:
  - indicator: rsi
    subject: {kind: indicator-component, component: line}
    target: {kind: value}
    operator: crosses-above
    threshold: 30
exit:
  - indicator: bollinger
    subject: {kind: price, source: high}
    target: {kind: component, component: upper}
    operator: ">="
`), 0o600))

	rs, err := LoadRuleSet(path)
	require.NoError(t, err)

	assert.Equal(t, "rsi-reversal", rs.Name)
	require.Len(t, rs.Entry, 1)
	require.Len(t, rs.Exit, 1)
	assert.Equal(t, models.IndicatorRSI, rs.Entry[0].Indicator)
	require.NotNil(t, rs.Entry[0].Threshold)
	assert.Equal(t, 30.0, *rs.Entry[0].Threshold)
	assert.Equal(t, models.IndicatorBB, rs.Exit[0].Indicator)
	assert.Equal(t, models.OpGreaterEq, rs.Exit[0].Operator)

	reg := newDefaultRegistry(t)
	assert.NoError(t, reg.ValidateRuleSet(rs))
}

func TestParseRuleSetOperatorAliases(t *testing.T) {
	rs, err := ParseRuleSet([]byte(`
name: aliases
entry:
  - indicator: macd
    subject: {kind: indicator-component, component: macd}
    target: {kind: component, component: signal}
    operator: crossover
  - indicator: RSI
    subject: {kind: indicator-component, component: line}
    target: {kind: value}
    operator: "=="
    threshold: 50
exit:
  - indicator: EMA
    subject: {kind: price}
    target: {kind: component, component: line}
    operator: touches
`))
	require.NoError(t, err)

	assert.Equal(t, models.OpCrossesAbove, rs.Entry[0].Operator)
	assert.Equal(t, models.OpEqual, rs.Entry[1].Operator)
	assert.Equal(t, models.Operator("touches"), rs.Exit[0].Operator)

	reg := newDefaultRegistry(t)
	assert.NoError(t, reg.Validate(rs.Entry[0]))
	assert.NoError(t, reg.Validate(rs.Entry[1]))
	assert.ErrorIs(t, reg.Validate(rs.Exit[0]), ErrUnknownOperator)
}

func TestLoadRuleSetMissingFile(t *testing.T) {
	_, err := LoadRuleSet(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read rule set")
}
