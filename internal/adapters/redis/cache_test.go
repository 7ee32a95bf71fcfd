package redisad

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"saunaandcold/internal/domain"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	return New(mr.Addr(), "", 0)
}

func TestCache_RoundTrip(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	in := []domain.Facility{
		{ID: "a", Name: "The Sauna House", City: "Leeds", County: "Leeds", Category: domain.CategorySauna},
	}
	if err := c.Set(ctx, "facilities:sauna", in, time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	var out []domain.Facility
	ok, err := c.Get(ctx, "facilities:sauna", &out)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected a hit")
	}
	if len(out) != 1 || out[0].ID != "a" || out[0].Name != "The Sauna House" {
		t.Fatalf("got %+v", out)
	}
}

func TestCache_MissReturnsFalse(t *testing.T) {
	c := newTestCache(t)

	var out []domain.Facility
	ok, err := c.Get(context.Background(), "facilities:sauna", &out)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("expected a miss")
	}
}

func TestCache_Del(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	if err := c.Set(ctx, "facilities:sauna", []domain.Facility{{ID: "a"}}, time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := c.Del(ctx, "facilities:sauna"); err != nil {
		t.Fatalf("del: %v", err)
	}
	var out []domain.Facility
	if ok, _ := c.Get(ctx, "facilities:sauna", &out); ok {
		t.Fatal("key survived delete")
	}
}
