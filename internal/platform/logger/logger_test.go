package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"":        Info,
		"debug":   Debug,
		" WARN ":  Warn,
		"warning": Warn,
		"error":   Error,
		"bogus":   Info,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "input %q", in)
	}
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatText, ParseFormat(""))
	assert.Equal(t, FormatText, ParseFormat("yaml"))
}

func TestZapLogger_WithAndFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewZap(zap.New(core)).With(map[string]any{"run_id": "r-1"})

	l.Info("pipeline finished", map[string]any{
		"returned": 2,
		"error":    errors.New("boom"),
		"":         "ignored",
	})

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		ctx := entries[0].ContextMap()
		assert.Equal(t, "pipeline finished", entries[0].Message)
		assert.Equal(t, "r-1", ctx["run_id"])
		assert.EqualValues(t, 2, ctx["returned"])
		assert.Equal(t, "boom", ctx["error"])
		assert.NotContains(t, ctx, "")
	}
}

func TestZapLogger_WithEmptyFieldsReturnsSame(t *testing.T) {
	l := NewNop()
	assert.Same(t, l, l.With(nil))
}
