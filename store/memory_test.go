package store

import (
	"context"
	"testing"
	"time"

	"github.com/rushteam/simkit/core"
)

func TestMemoryStoreGetSet(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	defer m.Close()

	if _, err := m.Get(ctx, "missing"); !core.IsStoreNotFound(err) {
		t.Errorf("Get(missing) error = %v, want NOT_FOUND", err)
	}

	if err := m.Set(ctx, "k", []byte("v")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, err := m.Get(ctx, "k")
	if err != nil || string(got) != "v" {
		t.Errorf("Get(k) = (%q,%v), want (v,nil)", got, err)
	}

	if err := m.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := m.Get(ctx, "k"); !core.IsStoreNotFound(err) {
		t.Errorf("Get after Delete error = %v, want NOT_FOUND", err)
	}
}

func TestMemoryStoreTTL(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	defer m.Close()

	if err := m.Set(ctx, "k", []byte("v"), 1); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if _, err := m.Get(ctx, "k"); err != nil {
		t.Fatalf("Get before expiry error = %v", err)
	}

	time.Sleep(1100 * time.Millisecond)
	if _, err := m.Get(ctx, "k"); !core.IsStoreNotFound(err) {
		t.Errorf("Get after expiry error = %v, want NOT_FOUND", err)
	}
}

func TestMemoryStoreBatch(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	defer m.Close()

	kvs := map[string][]byte{"a": []byte("1"), "b": []byte("2")}
	if err := m.BatchSet(ctx, kvs); err != nil {
		t.Fatalf("BatchSet() error = %v", err)
	}

	got, err := m.BatchGet(ctx, []string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("BatchGet() error = %v", err)
	}
	if len(got) != 2 || string(got["a"]) != "1" || string(got["b"]) != "2" {
		t.Errorf("BatchGet() = %v, want a=1 b=2", got)
	}
}
