package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func newTestLogger(t *testing.T) (*ZerologLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return NewZerologLogger(zerolog.New(&buf)), &buf
}

func TestZerologLogger_Levels_WriteExpectedOutput(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	out := buf.String()

	tests := []struct {
		level string
		msg   string
		field string
	}{
		{"debug", "dbg", `"a":1`},
		{"info", "inf", `"b":2`},
		{"warn", "wrn", `"c":3`},
		{"error", "err", `"d":4`},
	}

	for _, tc := range tests {
		if !strings.Contains(out, `"level":"`+tc.level+`"`) {
			t.Fatalf("expected line with level=%s in output:\n%s", tc.level, out)
		}
		if !strings.Contains(out, `"message":"`+tc.msg+`"`) {
			t.Fatalf("expected line with msg=%q in output:\n%s", tc.msg, out)
		}
		if !strings.Contains(out, tc.field) {
			t.Fatalf("expected attribute %s in output:\n%s", tc.field, out)
		}
	}
}

func TestZerologLogger_With_AddsAttributes(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := context.Background()

	log2 := log.With("request_id", "123", "user", "alice")
	log2.Info(ctx, "hello", "k", "v")

	out := buf.String()
	wantSubs := []string{
		`"level":"info"`,
		`"message":"hello"`,
		`"request_id":"123"`,
		`"user":"alice"`,
		`"k":"v"`,
	}
	for _, s := range wantSubs {
		if !strings.Contains(out, s) {
			t.Fatalf("expected %q in output, got:\n%s", s, out)
		}
	}
}

func TestZerologLogger_OddArgs_DoesNotPanic(t *testing.T) {
	log, _ := newTestLogger(t)
	ctx := context.TODO()
	log.Info(ctx, "odd", "only-key")
	log.Warn(ctx, "odd", "k", "v", "dangling")
}
