package storage

import (
	"errors"
	"testing"
)

func TestMemoryGetPutDelete(t *testing.T) {
	m := NewMemory()

	if _, err := m.Get("services"); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}

	if err := m.Put("services", []byte(`[]`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := m.Get("services")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != `[]` {
		t.Fatalf("unexpected value %q", got)
	}

	if err := m.Delete("services"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := m.Get("services"); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound after delete, got %v", err)
	}
}

func TestMemoryCopiesValues(t *testing.T) {
	m := NewMemory()

	value := []byte(`{"a":1}`)
	if err := m.Put("k", value); err != nil {
		t.Fatalf("Put: %v", err)
	}
	value[0] = 'X'

	got, err := m.Get("k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got[0] != '{' {
		t.Fatalf("stored value aliased the caller's slice")
	}
	got[0] = 'Y'

	again, err := m.Get("k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if again[0] != '{' {
		t.Fatalf("returned value aliased the stored slice")
	}
}
