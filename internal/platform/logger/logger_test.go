package logger

import (
	"bytes"
	"context"
	"testing"

	kit "lostfound/internal/platform/testkit"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":       zerolog.TraceLevel,
		"debug":       zerolog.DebugLevel,
		"INFO":        zerolog.InfoLevel,
		"warn":        zerolog.WarnLevel,
		"warning":     zerolog.WarnLevel,
		"error":       zerolog.ErrorLevel,
		"":            zerolog.InfoLevel,
		"  nonsense ": zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v want %v", in, got, want)
		}
	}
}

func TestInitNamedAndContext(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{
		Level:        "debug",
		Format:       "json",
		Service:      "lostfound-test",
		Writer:       &buf,
		StaticFields: map[string]string{"build": "test"},
	})

	Get().Info().Msg("root-msg")
	Named("matching").Info().Msg("named-msg")

	ctx := WithRequest(context.Background(), "req-123")
	ctx = WithField(ctx, "found_item_id", "item-9")
	C(ctx).Info().Msg("ctx-msg")
	C(context.Background()).Debug().Msg("bare-msg")

	out := buf.String()
	for _, want := range []string{
		"root-msg", "named-msg", "ctx-msg", "bare-msg",
		`"component":"matching"`, `"request_id":"req-123"`, `"found_item_id":"item-9"`,
		`"service":"lostfound-test"`, `"build":"test"`,
	} {
		kit.MustContain(t, out, want)
	}
}

func TestWithFieldDoesNotShareBacking(t *testing.T) {
	base := WithField(context.Background(), "a", "1")
	x := WithField(base, "b", "2")
	y := WithField(base, "c", "3")

	xs := x.Value(keyFields).([][2]string)
	ys := y.Value(keyFields).([][2]string)
	if xs[1][0] != "b" || ys[1][0] != "c" {
		t.Fatalf("sibling contexts clobbered each other: %v %v", xs, ys)
	}
	if WithField(base, "", "v") != base || WithField(base, "k", "") != base {
		t.Fatalf("blank key or value should return ctx unchanged")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "WARN")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("LOG_SERVICE", "svc-b")
	t.Setenv("LOG_CALLER", "true")
	t.Setenv("LOG_SAMPLE_EVERY", "5")

	opt := FromEnv()
	if opt.Level != "warn" || opt.Format != "console" || opt.Service != "svc-b" {
		t.Fatalf("FromEnv mismatch: %+v", opt)
	}
	if !opt.WithCaller || opt.SampleEvery != 5 {
		t.Fatalf("FromEnv caller/sample mismatch: %+v", opt)
	}
}
