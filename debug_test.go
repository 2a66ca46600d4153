package swoop

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// captureStderr runs fn with os.Stderr redirected and returns what it wrote.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stderr = w

	fn()

	w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestDebug_UpdateStatsLogged(t *testing.T) {
	m := NewManager()
	m.SetDebug(true)
	m.Add(NewBody("a", 0, 0), testLine, 1, Options{})
	m.Add(NewBody("b", 0, 0), testLine, 2, Options{})

	output := captureStderr(t, func() {
		_ = m.Update(1)
	})

	if !strings.Contains(output, "[swoop] active: 1 | reaped: 1") {
		t.Errorf("expected update stats in stderr, got: %q", output)
	}
}

func TestDebug_SilentWhenDisabled(t *testing.T) {
	m := NewManager()
	m.Add(NewBody("a", 0, 0), testLine, 1, Options{})

	output := captureStderr(t, func() {
		_ = m.Update(1)
	})

	if output != "" {
		t.Errorf("expected no output with debug off, got: %q", output)
	}
}

func TestDebug_ActiveCountWarning(t *testing.T) {
	m := NewManager()
	m.SetDebug(true)

	output := captureStderr(t, func() {
		for i := 0; i < debugMaxActive+1; i++ {
			m.Add(NewBody("", 0, 0), testLine, 1, Options{})
		}
	})

	if !strings.Contains(output, "warning: 1001 active instances") {
		t.Errorf("expected active count warning in stderr, got: %q", output)
	}
}
