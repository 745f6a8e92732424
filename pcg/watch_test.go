package pcg

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsDocumentChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	doc := filepath.Join(dir, "graph.xml")
	if err := SaveFile(doc, buildGraph()); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if got != doc {
			t.Errorf("event = %q, want %q", got, doc)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for watcher event")
	}
}

func TestWatcherCloseClosesChannels(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if _, ok := <-w.Events; ok {
		t.Error("Events should be closed")
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close = %v", err)
	}
}

func TestIsDocumentFile(t *testing.T) {
	tests := map[string]bool{
		"a.xml":      true,
		"B.XML":      true,
		"a.yaml":     false,
		"graph":      false,
		"dir/x.xml~": false,
	}
	for path, want := range tests {
		if got := isDocumentFile(path); got != want {
			t.Errorf("isDocumentFile(%q) = %v, want %v", path, got, want)
		}
	}
}
