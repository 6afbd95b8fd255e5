package js

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"hokusai/pkg/compose"
)

func TestConsoleRoutesToComposeLogger(t *testing.T) {
	var buf bytes.Buffer
	compose.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer compose.SetLogger(nil)

	e := New()
	if _, err := e.Evaluate(`console.warn("slow", "component"); null`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "slow component") {
		t.Errorf("expected joined arguments in log output, got %q", out)
	}
	if !strings.Contains(out, "WARN") {
		t.Errorf("expected warn level, got %q", out)
	}
	if !strings.Contains(out, "source=js") {
		t.Errorf("expected source attribute, got %q", out)
	}
}

func TestConsoleLevels(t *testing.T) {
	var buf bytes.Buffer
	compose.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer compose.SetLogger(nil)

	e := New()
	src := `console.log("a"); console.info("b"); console.error("c"); null`
	if _, err := e.Evaluate(src); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"INFO", "ERROR"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s record, got %q", want, out)
		}
	}
	if strings.Count(out, "\n") != 3 {
		t.Errorf("expected three records, got %q", out)
	}
}

func TestConsoleSilentByDefault(t *testing.T) {
	var buf bytes.Buffer
	compose.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelError})))
	defer compose.SetLogger(nil)

	e := New()
	if _, err := e.Evaluate(`console.log("chatty"); null`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected disabled level to produce no output, got %q", buf.String())
	}
}
