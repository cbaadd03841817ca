package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewWithClient(client, time.Minute)
}

func TestCache_SetGet(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	if err := c.Set(ctx, "spots:52.37:4.90", []byte(`{"spots":[]}`)); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, ok := c.Get(ctx, "spots:52.37:4.90")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if string(got) != `{"spots":[]}` {
		t.Fatalf("unexpected payload: %s", got)
	}
}

func TestCache_MissingKey(t *testing.T) {
	c := newTestCache(t)

	if _, ok := c.Get(context.Background(), "absent"); ok {
		t.Fatal("expected cache miss")
	}
}

func TestCache_NilIsDisabled(t *testing.T) {
	var c *Cache

	if err := c.Set(context.Background(), "k", []byte("v")); err != nil {
		t.Fatalf("nil cache Set should be a no-op, got %v", err)
	}
	if _, ok := c.Get(context.Background(), "k"); ok {
		t.Fatal("nil cache should always miss")
	}
}
