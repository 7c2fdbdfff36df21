package store

import (
	"errors"
	"testing"
)

func TestMemoryStorageRoundTrip(t *testing.T) {
	s := NewMemoryStorage()

	if _, err := s.Read("trips"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for an unwritten slot, got %v", err)
	}

	if err := s.Write("trips", []byte(`[1,2,3]`)); err != nil {
		t.Fatal(err)
	}
	got, err := s.Read("trips")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `[1,2,3]` {
		t.Fatalf("got %q", got)
	}

	// The returned document is a copy; mutating it must not corrupt the slot.
	got[0] = 'x'
	again, err := s.Read("trips")
	if err != nil {
		t.Fatal(err)
	}
	if string(again) != `[1,2,3]` {
		t.Fatalf("slot mutated through a read copy: %q", again)
	}
}

func TestFileStorageRoundTrip(t *testing.T) {
	s, err := NewFileStorage(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := s.Read("trips"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for an unwritten slot, got %v", err)
	}

	if err := s.Write("trips", []byte(`[{"id":1}]`)); err != nil {
		t.Fatal(err)
	}
	got, err := s.Read("trips")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `[{"id":1}]` {
		t.Fatalf("got %q", got)
	}

	// Overwrite replaces the whole document.
	if err := s.Write("trips", []byte(`[]`)); err != nil {
		t.Fatal(err)
	}
	got, err = s.Read("trips")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `[]` {
		t.Fatalf("got %q after overwrite", got)
	}
}

func TestFileStorageSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := NewFileStorage(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Write("trips", []byte(`[{"id":7}]`)); err != nil {
		t.Fatal(err)
	}

	s2, err := NewFileStorage(dir)
	if err != nil {
		t.Fatal(err)
	}
	got, err := s2.Read("trips")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `[{"id":7}]` {
		t.Fatalf("got %q after reopen", got)
	}
}
