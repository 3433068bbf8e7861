package kvstore

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryStore_GetMissingKey(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.Get(context.Background(), "store_1_items")
	if !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestMemoryStore_SetGetRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.Set(ctx, "store_1_items", `[{"item_id":1,"price":14.99}]`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	val, err := s.Get(ctx, "store_1_items")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val != `[{"item_id":1,"price":14.99}]` {
		t.Fatalf("unexpected value: %s", val)
	}
}

func TestMemoryStore_LastWriteWins(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.Set(ctx, "k", "first"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Set(ctx, "k", "second"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	val, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val != "second" {
		t.Fatalf("expected %q, got %q", "second", val)
	}
}

func TestMemoryStore_Delete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.Get(ctx, "k"); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound after delete, got %v", err)
	}

	// deleting an absent key is a no-op
	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("expected nil on second delete, got %v", err)
	}
}
