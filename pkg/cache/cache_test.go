package cache

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	c := New[string, int]()
	if c == nil {
		t.Fatal("New() returned nil")
	}
	if c.entries == nil {
		t.Error("entries map not initialized")
	}
	if c.Size() != 0 {
		t.Errorf("expected size 0, got %d", c.Size())
	}
}

func TestSet(t *testing.T) {
	c := New[string, int]()

	c.Set("key1", 100)
	if c.Size() != 1 {
		t.Errorf("expected size 1, got %d", c.Size())
	}

	c.Set("key2", 200)
	if c.Size() != 2 {
		t.Errorf("expected size 2, got %d", c.Size())
	}

	c.Set("key1", 150)
	if c.Size() != 2 {
		t.Errorf("expected size 2 after overwrite, got %d", c.Size())
	}
}

func TestGet(t *testing.T) {
	c := New[string, int]()
	_, ok := c.Get("nonexistent")
	if ok {
		t.Error("expected ok=false for non-existent key")
	}

	c.Set("key1", 100)
	val, ok := c.Get("key1")
	if !ok {
		t.Error("expected ok=true for existing key")
	}
	if val != 100 {
		t.Errorf("expected value 100, got %d", val)
	}
}

func TestDelete(t *testing.T) {
	c := New[string, int]()
	c.Set("a", 1)
	c.Set("b", 2)

	c.Delete("a")
	c.Delete("missing")

	if _, ok := c.Get("a"); ok {
		t.Error("expected a to be deleted")
	}
	if keys := c.Keys(); len(keys) != 1 || keys[0] != "b" {
		t.Errorf("expected keys [b], got %v", keys)
	}
}

func TestBoundedEvictsOldest(t *testing.T) {
	c := NewBounded[string, int](2)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("a", 10)
	c.Set("c", 3)

	if c.Size() != 2 {
		t.Fatalf("expected size 2, got %d", c.Size())
	}
	if _, ok := c.Get("a"); ok {
		t.Error("expected a to be evicted")
	}
	if v, ok := c.Get("c"); !ok || v != 3 {
		t.Errorf("expected c=3, got %d, %v", v, ok)
	}
}

func TestGetOrSet(t *testing.T) {
	c := New[string, int]()
	calls := 0
	fn := func() int {
		calls++
		return 42
	}

	if v := c.GetOrSet("k", fn); v != 42 {
		t.Errorf("expected 42, got %d", v)
	}
	if v := c.GetOrSet("k", fn); v != 42 {
		t.Errorf("expected 42, got %d", v)
	}
	if calls != 1 {
		t.Errorf("expected fn to be called once, got %d", calls)
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := NewBounded[string, int](50)
	var wg sync.WaitGroup

	for i := range 10 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := range 100 {
				key := fmt.Sprintf("%d-%d", n, j)
				c.Set(key, j)
				c.Get(key)
				c.Keys()
			}
		}(i)
	}
	wg.Wait()

	if c.Size() > 50 {
		t.Errorf("expected at most 50 entries, got %d", c.Size())
	}
}

func TestGetOrSetConcurrentMiss(t *testing.T) {
	c := New[string, int]()
	var calls atomic.Int32
	var wg sync.WaitGroup

	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.GetOrSet("k", func() int {
				calls.Add(1)
				return 1
			})
		}()
	}
	wg.Wait()

	if n := calls.Load(); n != 1 {
		t.Errorf("expected fn to be called once, got %d", n)
	}
}
