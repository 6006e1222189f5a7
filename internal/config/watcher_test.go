package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestWatcherDeliversReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inkstorm.toml")
	writeConfig(t, path, "[gesture]\ndrag_threshold = 5.0\n")

	loaded := make(chan Config, 1)
	w, err := NewWatcher(path, func(cfg Config) {
		select {
		case loaded <- cfg:
		default:
		}
	}, WithDebounce(10*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	writeConfig(t, path, "[gesture]\ndrag_threshold = 9.0\n")

	select {
	case cfg := <-loaded:
		if cfg.Gesture.DragThreshold != 9 {
			t.Errorf("DragThreshold = %v, want 9", cfg.Gesture.DragThreshold)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload delivered")
	}
}

func TestWatcherReportsParseErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inkstorm.toml")
	writeConfig(t, path, "")

	errs := make(chan error, 1)
	w, err := NewWatcher(path, func(Config) {},
		WithDebounce(10*time.Millisecond),
		WithErrorHandler(func(e error) {
			select {
			case errs <- e:
			default:
			}
		}))
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	writeConfig(t, path, "not toml [")

	select {
	case <-errs:
	case <-time.After(5 * time.Second):
		t.Fatal("no error delivered")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inkstorm.toml")
	writeConfig(t, path, "")

	w, err := NewWatcher(path, func(Config) {})
	if err != nil {
		t.Fatal(err)
	}

	if err := w.Close(); err != nil {
		t.Errorf("first Close() = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}
}
