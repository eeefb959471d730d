// SPDX-FileCopyrightText: © 2025 Nfrastack <code@nfrastack.com>
//
// SPDX-License-Identifier: BSD-3-Clause

package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// withCapture redirects the log streams and restores every package
// knob the test touches.
func withCapture(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	t.Cleanup(func() {
		SetOutput(os.Stdout, os.Stderr)
		SetLogLevel(LevelInfo)
		SetTimestamps(false)
	})
	return &out, &errOut
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"trace", LogLevelTrace},
		{"debug", LogLevelDebug},
		{"verbose", LogLevelVerbose},
		{"info", LogLevelInfo},
		{"warn", LogLevelWarn},
		{"error", LogLevelError},
		{"ERROR", LogLevelError},
		{"bogus", LogLevelNone},
		{"", LogLevelNone},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestScopedOutput(t *testing.T) {
	out, errOut := withCapture(t)
	SetLogLevel(LevelDebug)

	logger := NewScopedLogger("[test]", "")
	logger.Info("hello %d", 42)
	logger.Warn("watch out")

	if got := out.String(); !strings.Contains(got, "    INFO [test] hello 42") {
		t.Errorf("info line = %q", got)
	}
	if got := errOut.String(); !strings.Contains(got, "    WARN [test] watch out") {
		t.Errorf("warn line = %q", got)
	}
}

func TestGlobalLevelSuppression(t *testing.T) {
	out, _ := withCapture(t)
	SetLogLevel(LevelInfo)

	logger := NewScopedLogger("[test]", "")
	logger.Debug("hidden")
	if out.Len() != 0 {
		t.Errorf("debug line leaked through info level: %q", out.String())
	}
}

func TestPerScopeOverride(t *testing.T) {
	out, _ := withCapture(t)
	SetLogLevel(LevelError)

	logger := NewScopedLogger("[chatty]", LevelDebug)
	logger.Debug("visible")
	if !strings.Contains(out.String(), "visible") {
		t.Errorf("per-scope override ignored: %q", out.String())
	}
}

func TestFatalBeforeInitializeIsRaw(t *testing.T) {
	_, errOut := withCapture(t)

	mu.Lock()
	wasInitialized := initialized
	initialized = false
	mu.Unlock()
	oldExit := exitFunc
	var code = -1
	exitFunc = func(c int) { code = c }
	t.Cleanup(func() {
		exitFunc = oldExit
		mu.Lock()
		initialized = wasInitialized
		mu.Unlock()
	})

	NewScopedLogger("[x]", "").Fatal("broken: %s", "detail")

	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if got := errOut.String(); !strings.HasPrefix(got, "FATAL: broken: detail") {
		t.Errorf("raw fatal output = %q", got)
	}
}

func TestFatalAfterInitializeIsStructured(t *testing.T) {
	_, errOut := withCapture(t)

	Initialize()
	oldExit := exitFunc
	var code = -1
	exitFunc = func(c int) { code = c }
	t.Cleanup(func() { exitFunc = oldExit })

	NewScopedLogger("[startup]", "").Fatal("no luck")

	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if got := errOut.String(); !strings.Contains(got, "   FATAL [startup] no luck") {
		t.Errorf("structured fatal output = %q", got)
	}
}
