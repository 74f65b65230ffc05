package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fsmkit/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	empty := logger.Errors(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestStateAttrs(t *testing.T) {
	tests := []struct {
		name string
		attr slog.Attr
		key  string
		want any
	}{
		{"component", logger.Component("statemachine"), "component", "statemachine"},
		{"machine", logger.Machine("light-1"), "machine", "light-1"},
		{"state", logger.State("off"), "state", "off"},
		{"from", logger.FromState("off"), "from", "off"},
		{"to", logger.ToState("on"), "to", "on"},
		{"event type", logger.EventType("lightswitch.OnEvent"), "event_type", "lightswitch.OnEvent"},
		{"listener", logger.ListenerHandle(7), "listener", uint64(7)},
		{"count", logger.Count(3), "count", int64(3)},
		{"step", logger.Step(9), "step", int64(9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.want, tt.attr.Value.Any())
		})
	}
}

func TestRunID(t *testing.T) {
	attr := logger.RunID("abc")
	require.Equal(t, "run_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.Any())

	empty := logger.RunID(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}
