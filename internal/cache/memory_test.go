package cache

import (
	"testing"
	"time"
)

func TestMemoryCache_SetGetDelete(t *testing.T) {
	c := NewMemory(time.Minute)

	if _, ok := c.Get("categories"); ok {
		t.Error("expected miss on empty cache")
	}

	c.Set("categories", []byte(`[{"name":"Antibiotics"}]`))
	b, ok := c.Get("categories")
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if string(b) != `[{"name":"Antibiotics"}]` {
		t.Errorf("unexpected payload: %s", b)
	}

	c.Delete("categories")
	if _, ok := c.Get("categories"); ok {
		t.Error("expected miss after Delete")
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemory(10 * time.Millisecond)

	c.Set("orders", []byte("[]"))
	time.Sleep(30 * time.Millisecond)

	if _, ok := c.Get("orders"); ok {
		t.Error("expected entry to expire")
	}
}

func TestOwnedKey(t *testing.T) {
	got := OwnedKey("products:variants", "abc")
	if got != "products:variants:abc" {
		t.Errorf("unexpected key %q", got)
	}
}
