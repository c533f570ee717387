package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSilentByDefault(t *testing.T) {
	assert.False(t, L().Enabled(context.Background(), slog.LevelError))
}

func TestSetAndReset(t *testing.T) {
	var buf bytes.Buffer
	Set(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer Set(nil)

	With("reify").Debug("converted", "kind", "rect")
	assert.Contains(t, buf.String(), "component=reify")
	assert.Contains(t, buf.String(), "kind=rect")

	Set(nil)
	assert.False(t, L().Enabled(context.Background(), slog.LevelError))
}
