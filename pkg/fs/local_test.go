package fs

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestLocalOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(path, []byte("hello words"), 0o644); err != nil {
		t.Fatalf("writing input: %v", err)
	}

	r, err := NewLocal().Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("reading: %v", err)
	}
	if string(data) != "hello words" {
		t.Errorf("read %q", data)
	}
}

func TestLocalOpenMissing(t *testing.T) {
	if _, err := NewLocal().Open(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("Open on missing file succeeded")
	}
}

func TestArtifactDirCreatesDirAndFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	sinks := NewArtifactDir(dir)

	w, err := sinks.Create('q')
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := w.Write([]byte("quail:[1]\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "q.txt"))
	if err != nil {
		t.Fatalf("reading artifact: %v", err)
	}
	if string(data) != "quail:[1]\n" {
		t.Errorf("artifact content %q", data)
	}
}

func TestArtifactDirTruncatesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(path, []byte("stale:[9]\n"), 0o644); err != nil {
		t.Fatalf("seeding stale artifact: %v", err)
	}

	w, err := NewArtifactDir(dir).Create('a')
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	w.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading artifact: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("stale content survived: %q", data)
	}
}
