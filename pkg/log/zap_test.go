package log

import (
	"context"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name   string
		arg    []any
		wantOK bool
		msg    string
	}{
		{name: "single message", arg: []any{"hello"}, wantOK: false},
		{name: "message with pairs", arg: []any{"generated", "provider", "deepseek", "tokens", 12}, wantOK: true, msg: "generated"},
		{name: "even tail", arg: []any{"a", "b"}, wantOK: false},
		{name: "non-string key", arg: []any{"msg", 1, "v"}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, _, ok := split(tt.arg)
			if ok != tt.wantOK {
				t.Fatalf("split() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && msg != tt.msg {
				t.Errorf("split() msg = %q, want %q", msg, tt.msg)
			}
		})
	}
}

func TestTraceID(t *testing.T) {
	ctx := WithTraceID(context.Background(), "abc-123")
	if got := TraceID(ctx); got != "abc-123" {
		t.Errorf("TraceID() = %q, want abc-123", got)
	}
	if got := TraceID(context.Background()); got != "" {
		t.Errorf("TraceID() on empty ctx = %q, want empty", got)
	}
}

func TestInit_DoesNotPanic(t *testing.T) {
	for _, cfg := range []ZapConfig{
		{Level: "debug", Mode: ModeDevelopment, ColorEnabled: true},
		{Level: "bogus", Mode: ModeProduction, Encoding: EncodingJSON},
	} {
		l := Init(cfg)
		l.Infof(context.Background(), "initialized with %s", cfg.Mode)
	}
	NewNop().Info(context.Background(), "discarded", "k", "v")
}
