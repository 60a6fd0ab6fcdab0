package virt_test

import (
	"testing"

	"github.com/go-virtual/virt"
)

// mockCell records every lifecycle interaction the engine performs on it.
type mockCell struct {
	item     int
	index    int
	updates  int
	disposed int
	cached   int
	decached int
}

func (c *mockCell) Visual() any { return c }

func (c *mockCell) UpdateIndex(index int) { c.index = index }

func (c *mockCell) UpdateItem(item int) {
	c.item = item
	c.updates++
}

func (c *mockCell) Dispose() { c.disposed++ }

func (c *mockCell) OnCache() { c.cached++ }

func (c *mockCell) OnDecache() { c.decached++ }

// recordingFactory counts creations and keeps every cell it ever built.
type recordingFactory struct {
	created []*mockCell
}

func (f *recordingFactory) New(item int) virt.Cell[int] {
	c := &mockCell{item: item, index: -1}
	f.created = append(f.created, c)
	return c
}

func (f *recordingFactory) calls() int { return len(f.created) }

func ints(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestSimpleCell(t *testing.T) {
	c := virt.NewSimpleCell(42)
	if c.Item() != 42 {
		t.Errorf("Item = %d, want 42", c.Item())
	}
	if c.Index() != -1 {
		t.Errorf("fresh cell Index = %d, want -1", c.Index())
	}

	var gotIndex, gotItem int
	c.OnUpdate = func(index, item int) { gotIndex, gotItem = index, item }

	c.UpdateIndex(5)
	if c.Index() != 5 || gotIndex != 5 {
		t.Errorf("after UpdateIndex: Index = %d, hook saw %d, want 5", c.Index(), gotIndex)
	}
	c.UpdateItem(7)
	if c.Item() != 7 || gotItem != 7 {
		t.Errorf("after UpdateItem: Item = %d, hook saw %d, want 7", c.Item(), gotItem)
	}
	if c.Visual() != c {
		t.Error("SimpleCell Visual should return the cell itself")
	}
}
