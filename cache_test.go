package virt_test

import (
	"testing"

	"github.com/go-virtual/virt"
)

func TestCacheFIFO(t *testing.T) {
	cache := virt.NewCellsCache[int](nil, 5)
	a, b := &mockCell{}, &mockCell{}
	cache.Cache(a, b)

	got, ok := cache.TryTake()
	if !ok || got != a {
		t.Errorf("first TryTake = %v, want cell a", got)
	}
	got, ok = cache.TryTake()
	if !ok || got != b {
		t.Errorf("second TryTake = %v, want cell b", got)
	}
	if _, ok := cache.TryTake(); ok {
		t.Error("TryTake on empty cache should report false")
	}
}

func TestCacheHooks(t *testing.T) {
	cache := virt.NewCellsCache[int](nil, 5)
	c := &mockCell{}
	cache.CacheOne(c)
	if c.cached != 1 {
		t.Errorf("OnCache calls = %d, want 1", c.cached)
	}
	cache.TryTake()
	if c.decached != 1 {
		t.Errorf("OnDecache calls = %d, want 1", c.decached)
	}
	if c.disposed != 0 {
		t.Errorf("cell disposed %d times, want 0", c.disposed)
	}
}

func TestCacheOverflowDisposesOldest(t *testing.T) {
	cache := virt.NewCellsCache[int](nil, 2)
	a, b, c := &mockCell{}, &mockCell{}, &mockCell{}
	cache.Cache(a, b, c)

	if a.disposed != 1 {
		t.Errorf("oldest cell disposed %d times, want 1", a.disposed)
	}
	if b.disposed != 0 || c.disposed != 0 {
		t.Error("younger cells must survive overflow")
	}
	if cache.Size() != 2 {
		t.Errorf("Size = %d, want 2", cache.Size())
	}
}

func TestCacheZeroCapacity(t *testing.T) {
	cache := virt.NewCellsCache[int](nil, 0)
	c := &mockCell{}
	if cache.CacheOne(c) {
		t.Error("CacheOne should report false at capacity 0")
	}
	if c.disposed != 1 {
		t.Errorf("cell disposed %d times, want 1", c.disposed)
	}
	if c.cached != 0 {
		t.Error("OnCache must not fire for a rejected cell")
	}
}

func TestCacheSetCapacityShrinks(t *testing.T) {
	cache := virt.NewCellsCache[int](nil, 4)
	cells := []*mockCell{{}, {}, {}, {}}
	for _, c := range cells {
		cache.CacheOne(c)
	}

	cache.SetCapacity(2)
	if cache.Size() != 2 {
		t.Fatalf("Size after shrink = %d, want 2", cache.Size())
	}
	if cells[0].disposed != 1 || cells[1].disposed != 1 {
		t.Error("shrinking must dispose the oldest cells")
	}
	if cells[2].disposed != 0 || cells[3].disposed != 0 {
		t.Error("shrinking must keep the newest cells")
	}
}

func TestCacheRemove(t *testing.T) {
	cache := virt.NewCellsCache[int](nil, 5)
	a, b := &mockCell{}, &mockCell{}
	cache.Cache(a, b)

	if !cache.Remove(a) {
		t.Fatal("Remove should find a cached cell")
	}
	if a.disposed != 1 {
		t.Errorf("removed cell disposed %d times, want 1", a.disposed)
	}
	if cache.Remove(a) {
		t.Error("Remove should report false for an absent cell")
	}
	if cache.Size() != 1 {
		t.Errorf("Size = %d, want 1", cache.Size())
	}
}

func TestCacheClear(t *testing.T) {
	cache := virt.NewCellsCache[int](nil, 5)
	a, b := &mockCell{}, &mockCell{}
	cache.Cache(a, b)
	cache.Clear()

	if cache.Size() != 0 {
		t.Errorf("Size after Clear = %d, want 0", cache.Size())
	}
	if a.disposed != 1 || b.disposed != 1 {
		t.Error("Clear must dispose every cached cell")
	}
}

func TestCachePopulate(t *testing.T) {
	factory := &recordingFactory{}
	cache := virt.NewCellsCache(factory.New, 3)
	cache.Populate()

	if cache.Size() != 3 {
		t.Errorf("Size after Populate = %d, want 3", cache.Size())
	}
	if factory.calls() != 3 {
		t.Errorf("factory calls = %d, want 3", factory.calls())
	}
	// Populate is idempotent at capacity.
	cache.Populate()
	if factory.calls() != 3 {
		t.Errorf("factory calls after repopulate = %d, want 3", factory.calls())
	}
}

func TestCachePopulateWithoutFactoryPanics(t *testing.T) {
	cache := virt.NewCellsCache[int](nil, 3)
	defer func() {
		if recover() == nil {
			t.Error("Populate without a factory should panic")
		}
	}()
	cache.Populate()
}
