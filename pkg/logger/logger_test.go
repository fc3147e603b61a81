package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	old := SetServiceName("semantics-test")
	defer SetServiceName(old)

	l, err := New("debug", "json")
	require.NoError(t, err)
	require.NotNil(t, l)
	assert.Same(t, l, InfoLogger)
	assert.NotPanics(t, func() {
		Info("registry has %d indicators", 7)
		Error("rule %s rejected", "entry[0]")
	})
}

func TestNewBadLevel(t *testing.T) {
	_, err := New("loud", "console")
	assert.Error(t, err)
}

func TestSetServiceName(t *testing.T) {
	old := SetServiceName("a")
	assert.Equal(t, "a", SetServiceName("b"))
	SetServiceName(old)
}
