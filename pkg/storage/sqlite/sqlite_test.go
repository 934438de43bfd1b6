package sqlite

import (
	"bytes"
	"path/filepath"
	"testing"
)

func openTestSink(t *testing.T) *Sink {
	t.Helper()
	sink, err := Open(filepath.Join(t.TempDir(), "data", "catalog.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = sink.Close() })
	return sink
}

func TestOpen(t *testing.T) {
	t.Run("CreatesParentDirectory", func(t *testing.T) {
		openTestSink(t)
	})

	t.Run("EmptyPathRejected", func(t *testing.T) {
		if _, err := Open(""); err == nil {
			t.Fatal("expected error for empty path")
		}
	})
}

func TestSaveLoad(t *testing.T) {
	sink := openTestSink(t)

	value := []byte(`[{"id":1}]`)
	if err := sink.Save("cinetech.films", value); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, ok, err := sink.Load("cinetech.films")
	if err != nil || !ok {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
	if !bytes.Equal(got, value) {
		t.Errorf("loaded %q, want %q", got, value)
	}

	t.Run("Upsert", func(t *testing.T) {
		if err := sink.Save("cinetech.films", []byte("[]")); err != nil {
			t.Fatalf("Save: %v", err)
		}
		got, _, _ := sink.Load("cinetech.films")
		if string(got) != "[]" {
			t.Errorf("expected upserted value, got %q", got)
		}
	})

	t.Run("AbsentKey", func(t *testing.T) {
		_, ok, err := sink.Load("never-saved")
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if ok {
			t.Error("expected ok=false for absent key")
		}
	})
}

func TestValuesSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")

	sink, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := sink.Save("cinetech.directors", []byte(`[{"id":1}]`)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer reopened.Close()

	got, ok, err := reopened.Load("cinetech.directors")
	if err != nil || !ok {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
	if string(got) != `[{"id":1}]` {
		t.Errorf("loaded %q after reopen", got)
	}
}
