package logging

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestNewRotatingWriter(t *testing.T) {
	t.Run("creates file and parent directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", FileName)

		rw, err := NewRotatingWriter(path, DefaultRotationConfig())
		if err != nil {
			t.Fatalf("NewRotatingWriter failed: %v", err)
		}
		defer rw.Close()

		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected file at %s: %v", path, err)
		}
		if rw.Path() != path {
			t.Errorf("Path() = %q, want %q", rw.Path(), path)
		}
	})

	t.Run("picks up existing size", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), FileName)
		if err := os.WriteFile(path, []byte("existing\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		rw, err := NewRotatingWriter(path, DefaultRotationConfig())
		if err != nil {
			t.Fatalf("NewRotatingWriter failed: %v", err)
		}
		defer rw.Close()

		if rw.Size() != int64(len("existing\n")) {
			t.Errorf("Size() = %d, want %d", rw.Size(), len("existing\n"))
		}
	})
}

func TestRotatingWriterRotation(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	rw, err := NewRotatingWriter(path, RotationConfig{MaxSizeMB: 1, MaxBackups: 2})
	if err != nil {
		t.Fatalf("NewRotatingWriter failed: %v", err)
	}
	defer rw.Close()

	chunk := []byte(strings.Repeat("x", 600*1024))
	for i := range 4 {
		if _, err := rw.Write(chunk); err != nil {
			t.Fatalf("write %d failed: %v", i, err)
		}
	}

	for _, p := range []string{path, path + ".1", path + ".2"} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("expected %s to exist: %v", p, err)
		}
	}
	if _, err := os.Stat(path + ".3"); !os.IsNotExist(err) {
		t.Error("backup beyond MaxBackups should not exist")
	}
	if rw.Size() != int64(len(chunk)) {
		t.Errorf("Size() after rotation = %d, want %d", rw.Size(), len(chunk))
	}
}

func TestRotatingWriterNoBackups(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	rw, err := NewRotatingWriter(path, RotationConfig{MaxSizeMB: 1, MaxBackups: 0})
	if err != nil {
		t.Fatalf("NewRotatingWriter failed: %v", err)
	}
	defer rw.Close()

	chunk := []byte(strings.Repeat("y", 700*1024))
	rw.Write(chunk)
	rw.Write(chunk)

	if _, err := os.Stat(path + ".1"); !os.IsNotExist(err) {
		t.Error("no backups should be kept when MaxBackups is 0")
	}
	if rw.Size() != int64(len(chunk)) {
		t.Errorf("Size() = %d, want %d", rw.Size(), len(chunk))
	}
}

func TestRotatingWriterDisabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	rw, err := NewRotatingWriter(path, RotationConfig{})
	if err != nil {
		t.Fatalf("NewRotatingWriter failed: %v", err)
	}
	defer rw.Close()

	chunk := []byte(strings.Repeat("z", 1024))
	for range 10 {
		rw.Write(chunk)
	}
	if _, err := os.Stat(path + ".1"); !os.IsNotExist(err) {
		t.Error("rotation should be disabled when MaxSizeMB is 0")
	}
}

func TestRotatingWriterConcurrency(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	rw, err := NewRotatingWriter(path, DefaultRotationConfig())
	if err != nil {
		t.Fatalf("NewRotatingWriter failed: %v", err)
	}

	line := []byte("line\n")
	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() {
			for range 50 {
				rw.Write(line)
			}
		})
	}
	wg.Wait()

	if want := int64(8 * 50 * len(line)); rw.Size() != want {
		t.Errorf("Size() = %d, want %d", rw.Size(), want)
	}
	rw.Close()
}

func TestRotatingWriterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	rw, err := NewRotatingWriter(path, DefaultRotationConfig())
	if err != nil {
		t.Fatalf("NewRotatingWriter failed: %v", err)
	}

	if err := rw.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	if err := rw.Close(); err != nil {
		t.Errorf("second Close() = %v, want nil", err)
	}
	if _, err := rw.Write([]byte("late")); err == nil {
		t.Error("Write after Close should fail")
	}
}

func TestDefaultRotationConfig(t *testing.T) {
	cfg := DefaultRotationConfig()
	if cfg.MaxSizeMB <= 0 {
		t.Errorf("MaxSizeMB = %d, want > 0", cfg.MaxSizeMB)
	}
	if cfg.MaxBackups <= 0 {
		t.Errorf("MaxBackups = %d, want > 0", cfg.MaxBackups)
	}
}
