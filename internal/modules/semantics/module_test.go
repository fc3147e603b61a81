package semantics

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"indicator_semantics/internal/models"
	"indicator_semantics/internal/modules/config"
	"indicator_semantics/internal/modules/semantics/service"
)

func newApp(t *testing.T, path string, reg **service.Registry) *fx.App {
	t.Helper()
	return fx.New(
		fx.NopLogger,
		fx.Supply(config.Path(path)),
		config.Module(),
		fx.Provide(zap.NewNop),
		Module(),
		fx.Populate(reg),
	)
}

func TestModuleBuildsDefaultRegistry(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")

	var reg *service.Registry
	app := newApp(t, "", &reg)
	require.NoError(t, app.Err())
	require.NotNil(t, reg)
	assert.Equal(t, models.KnownIndicators, reg.Indicators())
}

func TestModuleStrictModeRejectsBuiltinDuplicates(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("SEMANTICS_SCHEMA_REJECT_DUPLICATE_SUBJECTS", "true")

	var reg *service.Registry
	app := newApp(t, "", &reg)
	require.Error(t, app.Err())
	assert.Contains(t, app.Err().Error(), "already declared")
}

func writeSchema(t *testing.T, dir string, ids []models.IndicatorID) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("indicators:\n")
	for _, id := range ids {
		fmt.Fprintf(&b, `  - id: %s
    label: %s
    pairings:
      - subject: {kind: indicator-component, component: line}
        targets:
          - target: {kind: value, min: 0, max: 100}
            operators: [">", "<"]
`, id, id)
	}
	schema := filepath.Join(dir, "schema.yaml")
	require.NoError(t, os.WriteFile(schema, []byte(b.String()), 0o600))

	cfgPath := filepath.Join(dir, "values.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("schema:\n  file: "+schema+"\n"), 0o600))
	return cfgPath
}

func TestModuleLoadsSchemaFile(t *testing.T) {
	cfgPath := writeSchema(t, t.TempDir(), models.KnownIndicators)

	var reg *service.Registry
	app := newApp(t, cfgPath, &reg)
	require.NoError(t, app.Err())

	assert.Equal(t, models.KnownIndicators, reg.Indicators())
	ops := reg.Operators(models.IndicatorRSI, models.ComponentSubject("line"), models.ValueTarget())
	assert.True(t, ops.Equal(models.OperatorSet{models.OpGreater, models.OpLess}))
	assert.Empty(t, reg.Targets(models.IndicatorEMA, models.PriceSubject("")))
}

func TestModuleSchemaFileMissingIndicator(t *testing.T) {
	cfgPath := writeSchema(t, t.TempDir(), models.KnownIndicators[:len(models.KnownIndicators)-1])

	var reg *service.Registry
	app := newApp(t, cfgPath, &reg)
	require.Error(t, app.Err())
	assert.Contains(t, app.Err().Error(), "indicator VWAP not declared")
}
