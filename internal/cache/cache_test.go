package cache

import (
	"context"
	"testing"
	"time"
)

type brand struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewMemory(time.Minute)
	m.now = func() time.Time { return now }

	var got []brand
	if ok, err := m.Get(ctx, Key("brands"), &got); ok || err != nil {
		t.Fatalf("empty cache hit: ok=%v err=%v", ok, err)
	}

	want := []brand{{ID: 1, Title: "Dahua"}, {ID: 2, Title: "Hikvision"}}
	if err := m.Set(ctx, Key("brands"), want); err != nil {
		t.Fatal(err)
	}
	want[0].Title = "changed after set"

	ok, err := m.Get(ctx, Key("brands"), &got)
	if !ok || err != nil {
		t.Fatalf("miss after set: ok=%v err=%v", ok, err)
	}
	if len(got) != 2 || got[0].Title != "Dahua" {
		t.Errorf("got %+v", got)
	}

	now = now.Add(time.Minute)
	if ok, _ := m.Get(ctx, Key("brands"), &got); ok {
		t.Error("expired entry still served")
	}
}

func TestMemoryInvalidate(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(0)
	_ = m.Set(ctx, "k", 1)
	m.Invalidate()

	var n int
	if ok, _ := m.Get(ctx, "k", &n); ok {
		t.Error("hit after Invalidate")
	}
}

func TestNoop(t *testing.T) {
	var c Cache = Noop{}
	_ = c.Set(context.Background(), "k", 1)
	var n int
	if ok, err := c.Get(context.Background(), "k", &n); ok || err != nil {
		t.Errorf("Noop.Get = %v, %v", ok, err)
	}
}

func TestKey(t *testing.T) {
	if got := Key("categories", "0", "hikvision"); got != "katalog:categories:0:hikvision" {
		t.Errorf("Key = %q", got)
	}
}
