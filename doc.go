/*
Package virt provides UI-toolkit-agnostic virtualization containers: lists
and grids that display arbitrarily large item collections while keeping only
the cells that fit in the viewport (plus a small buffer) alive, recycling
them as the user scrolls.

# Overview

A container never owns pixels. It owns the virtualization state machine:
given a viewport size, a scroll position, cell dimensions and an item
collection, it decides which index range is active, which cell instance
backs each active index, and how to reconcile those decisions when any
input changes. Rendering is the host's job; the container hands it
immutable state snapshots plus pixel offsets to place them at.

Cell resolution always runs cheapest-first:

  - a cell already bound to the wanted index is moved untouched;
  - leftovers of the superseded state are re-bound (UpdateIndex and
    UpdateItem) before anything else is considered;
  - the idle-cell cache is drained next (UpdateItem plus UpdateIndex);
  - the factory runs only when every other path is exhausted.

During an items change, cells additionally "follow" their items: a cell
whose item moved to another in-range index is moved there and only told
its new index, so insertions and removals near the viewport do not repaint
every row.

# Quick Start

	items := virt.NewSliceSource(users...)
	list := virt.NewList(items, func(u User) virt.Cell[User] {
	    return NewUserRow(u)
	}, virt.WithCellSize[User](24), virt.WithBufferSize[User](2))

	list.OnStateChanged(func(s *virt.ListState[User]) {
	    // The cell set may have changed: resync visual children, then
	    // lay out.
	    relayout()
	})
	list.OnLayoutRequest(func() {
	    // Same cells, new offsets (e.g. a sub-cell scroll).
	    relayout()
	})

	list.SetViewportSize(400, 600)
	list.ScrollBy(wheelDelta)

	// Layout pass:
	origin := list.ViewportPosition()
	list.Layout(func(i int, cell virt.Cell[User]) {
	    place(cell.Visual(), origin+list.CellOffset(i))
	})

Mutating the SliceSource (Append, InsertAt, RemoveAt, SetAt, Permute,
Clear) notifies the list automatically. Hosts with their own data layer
implement Source and call NotifyChanged themselves.

# Containers

	virt.List[T]    1D, virtualizes one axis (Vertical or Horizontal).
	virt.Grid[T]    2D, folds a flat collection row-major into N columns
	                and virtualizes rows and columns independently.

Both publish snapshot states (ListState, GridState) through
OnStateChanged. A state is immutable once published: it is built by
exactly one transition, handed out, and disposed (cells returned to the
cache) when the next state supersedes it. Degenerate inputs (no items,
nil factory, non-positive cell size) collapse to a persistent empty
sentinel state rather than nil.

# Cells

Cells are the recycled unit. The host implements:

	type Cell[T any] interface {
	    Visual() any          // presentation object, stable for the cell's life
	    UpdateIndex(int)      // re-bound to a new position
	    UpdateItem(T)         // re-bound to a new item
	    Dispose()             // permanently destroyed
	}

SimpleCell is a ready-made base that stores the item and index and exposes
an OnUpdate hook. Cells that care about entering or leaving the idle pool
additionally implement CacheAware (OnCache, OnDecache).

UpdateIndex and UpdateItem must be cheap and idempotent; they are the hot
path of scrolling. Dispose is terminal: the engine never reuses a disposed
cell.

# The cache

Each container owns a CellsCache, a bounded FIFO pool of idle cells.
Disposing a state caches its cells; transitions drain the cache before
invoking the factory. Overflow disposes the oldest cell, capacity 0
disposes everything handed to it, and Populate warm-starts the pool so a
first layout pays for updates instead of creations.

# Scrolling

Positions are pixel offsets clamped to [0, virtualExtent - viewport].
A scroll that stays within one cell pitch changes no state at all, only
the layout offsets; a larger scroll swaps exactly the cells whose indexes
left the range for the indexes that entered it, touching neither cache
nor factory. ScrollBy, ScrollToIndex (list), ScrollToRow and
ScrollToColumn (grid) are conveniences over SetPosition / SetVPosition /
SetHPosition.

# Grid specifics

The grid keeps items flat and derives geometry from a configured column
count: item i sits at row i/cols, column i%cols. Both axes scroll
independently. Changing the column count re-linearizes every index, so
that transition re-matches cells by item exactly like an items change.
GridState captures the column count its linear indexes were computed
with; hosts must decode old states with the captured count, not the
container's current one.

# Terminal backend

The backend/term package adapts the engine to a tcell terminal screen,
mostly as a worked example of a host: it renders ListState/GridState
snapshots into screen cells and maps key events to scroll calls. See
example/ for a runnable program.
*/
package virt
