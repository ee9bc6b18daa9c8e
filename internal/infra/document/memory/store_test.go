package memory_test

import (
	"bytes"
	"testing"

	"todoseed/internal/infra/document/memory"
)

func TestWriteLoad(t *testing.T) {
	store := memory.New()
	data := []byte("{}")
	if err := store.Write("entities.json", data); err != nil {
		t.Fatalf("write: %v", err)
	}
	// The store keeps its own copy.
	data[0] = 'X'
	got, err := store.Load("entities.json")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !bytes.Equal(got, []byte("{}")) {
		t.Fatalf("stored document aliased caller buffer: %s", got)
	}
}

func TestLoadMissing(t *testing.T) {
	store := memory.New()
	if _, err := store.Load("absent.json"); err == nil {
		t.Fatalf("expected error for missing document")
	}
}

func TestWriteEmptyName(t *testing.T) {
	store := memory.New()
	if err := store.Write("", []byte("{}")); err == nil {
		t.Fatalf("expected error for empty name")
	}
}
