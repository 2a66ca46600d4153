package swoop

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writePresets(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestWatchPresetsReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "presets.yaml")
	writePresets(t, path, presetYAML)

	w, err := WatchPresets(path)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	writePresets(t, path, "presets:\n  toss:\n    duration: 0.3\n")

	select {
	case book := <-w.Reloaded:
		if _, ok := book.Get("toss"); !ok {
			t.Errorf("reloaded book names = %v, want toss", book.Names())
		}
	case err := <-w.Errors:
		t.Fatalf("unexpected error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatchPresetsReportsInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "presets.yaml")
	writePresets(t, path, presetYAML)

	w, err := WatchPresets(path)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	writePresets(t, path, "presets:\n  bad: {duration: 1, easing: wobble}\n")

	select {
	case <-w.Reloaded:
		t.Fatal("invalid file should not produce a book")
	case err := <-w.Errors:
		if err == nil {
			t.Error("nil error delivered")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for error")
	}
}

func TestWatchPresetsIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "presets.yaml")
	writePresets(t, path, presetYAML)

	w, err := WatchPresets(path)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	writePresets(t, filepath.Join(dir, "other.yaml"), "presets:\n  x: {duration: 1}\n")

	select {
	case <-w.Reloaded:
		t.Fatal("reloaded for an unrelated file")
	case <-time.After(3 * reloadDebounce):
	}
	if book := w.Poll(); book != nil {
		t.Error("Poll returned a book for an unrelated file")
	}
}

func TestPresetWatcherCloseIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "presets.yaml")
	writePresets(t, path, presetYAML)

	w, err := WatchPresets(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	if _, ok := <-w.Reloaded; ok {
		t.Error("Reloaded should be closed")
	}
	if book := w.Poll(); book != nil {
		t.Error("Poll after Close returned a book")
	}
}

func TestWatchPresetsMissingDir(t *testing.T) {
	if _, err := WatchPresets(filepath.Join(t.TempDir(), "gone", "presets.yaml")); err == nil {
		t.Error("expected error for missing directory")
	}
}
