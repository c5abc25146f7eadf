package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestLogger(t *testing.T, level slog.Level) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	log, buf := newTestLogger(t, slog.LevelDebug)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := [][]string{
		{"level=DEBUG", "msg=dbg", "a=1"},
		{"level=INFO", "msg=inf", "b=2"},
		{"level=WARN", "msg=wrn", "c=3"},
		{"level=ERROR", "msg=err", "d=4"},
	}
	if assert.Len(t, lines, len(want)) {
		for i, parts := range want {
			for _, p := range parts {
				assert.Contains(t, lines[i], p)
			}
		}
	}
}

func TestSlogLogger_BelowLevelIsDropped(t *testing.T) {
	log, buf := newTestLogger(t, slog.LevelWarn)

	log.Info(context.Background(), "quiet")
	log.Warn(context.Background(), "loud")

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "msg=loud")
}

func TestSlogLogger_With_AddsAttributes(t *testing.T) {
	log, buf := newTestLogger(t, slog.LevelDebug)

	log.With("session", "s-1", "customer_id", 7).Info(context.Background(), "hello", "k", "v")

	for _, s := range []string{"level=INFO", "msg=hello", "session=s-1", "customer_id=7", "k=v"} {
		assert.Contains(t, buf.String(), s)
	}
}

func TestSlogLogger_ContextPairs(t *testing.T) {
	log, buf := newTestLogger(t, slog.LevelDebug)

	ctx := ContextWith(context.Background(), "command", "order")
	ctx = ContextWith(ctx, "step", "reserve")
	log.Info(ctx, "reserved", "spaceship_id", 5)

	assert.Contains(t, buf.String(), "command=order step=reserve spaceship_id=5")
}
