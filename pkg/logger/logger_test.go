package logger

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestInitAndLevelString(t *testing.T) {
	cases := map[string]string{
		"debug":    "debug",
		"WARN":     "warn",
		"warning":  "warn",
		" Error ":  "error",
		"fatal":    "fatal",
		"nonsense": "info",
		"":         "info",
	}
	for in, want := range cases {
		Init(in)
		if got := LevelString(); got != want {
			t.Fatalf("Init(%q): LevelString() = %q, want %q", in, got, want)
		}
	}
	Init("info")
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(zapcore.AddSync(&buf))
	defer SetFormat("json")

	Init("warn")
	Debugf("debug-msg")
	Infof("info-msg")
	Warnf("warn-msg")
	Errorf("error-msg")
	Sync()

	out := buf.String()
	for msg, want := range map[string]bool{"debug-msg": false, "info-msg": false, "warn-msg": true, "error-msg": true} {
		if got := strings.Contains(out, msg); got != want {
			t.Fatalf("%s present=%v at warn level, want %v: %q", msg, got, want, out)
		}
	}

	// structured helpers follow the same level
	buf.Reset()
	Init("info")
	Infow("request", "status", 200)
	Sync()
	if !strings.Contains(buf.String(), `"status":200`) {
		t.Fatalf("structured field missing: %q", buf.String())
	}
}
