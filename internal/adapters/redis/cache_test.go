package redisad_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	redisad "github.com/sharanyanjs/Hotel-management-system/internal/adapters/redis"
	"github.com/sharanyanjs/Hotel-management-system/internal/app"
)

func newCache(t *testing.T) *redisad.Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	return redisad.New(mr.Addr(), "", 0)
}

func TestCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newCache(t)

	in := app.RoomView{Number: "101", Price: 99.99, Type: "DOUBLE", Floor: 1}
	if err := c.Set(ctx, "room:101", in, 60); err != nil {
		t.Fatalf("set: %v", err)
	}

	var out app.RoomView
	ok, err := c.Get(ctx, "room:101", &out)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatalf("expected hit")
	}
	if out.Number != "101" || out.Price != 99.99 {
		t.Fatalf("unexpected value: %+v", out)
	}
}

func TestCache_MissAndDel(t *testing.T) {
	ctx := context.Background()
	c := newCache(t)

	var out app.RoomView
	ok, err := c.Get(ctx, "room:absent", &out)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatalf("expected miss")
	}

	if err := c.Set(ctx, "k", []string{"a"}, 60); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := c.Del(ctx, "k"); err != nil {
		t.Fatalf("del: %v", err)
	}
	var vals []string
	ok, _ = c.Get(ctx, "k", &vals)
	if ok {
		t.Fatalf("expected miss after delete")
	}
}
