package refined

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r)
	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

func (h *recordingHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.records)
}

func TestConduitFor(t *testing.T) {
	t.Run("is idempotent per supertype", func(t *testing.T) {
		first := conduitFor[string]()
		second := conduitFor[string]()
		assert.Same(t, first, second)
	})

	t.Run("distinct supertypes get distinct conduits", func(t *testing.T) {
		assert.NotSame(t, conduitFor[int](), conduitFor[int64]())
	})

	t.Run("recognized kinds are safe", func(t *testing.T) {
		assert.True(t, conduitFor[string]().safe)
		assert.True(t, conduitFor[int]().safe)
		assert.True(t, conduitFor[float64]().safe)
		assert.True(t, conduitFor[[]int]().safe)
		assert.True(t, conduitFor[map[string]int]().safe)
	})

	t.Run("warns once for an unrecognized supertype", func(t *testing.T) {
		h := &recordingHandler{}
		SetLogger(slog.New(h))
		defer SetLogger(nil)

		type account struct{ balance int }

		c := conduitFor[account]()
		require.False(t, c.safe)
		assert.Equal(t, 1, h.count())

		// Cached conduit, no second warning.
		conduitFor[account]()
		assert.Equal(t, 1, h.count())
	})
}
