package virt

// Source is the read-only view a container has of its items collection. The
// collection is owned by the host; the engine only reads it and reacts to
// change notifications delivered through List.NotifyChanged or
// Grid.NotifyChanged.
type Source[T any] interface {
	Count() int
	Get(index int) T
}

// Observable is optionally implemented by sources that can push their own
// change notifications. When such a source is handed to a container, the
// container binds itself so that mutations reach it without the host having
// to forward descriptors manually.
type Observable interface {
	Bind(fn func(Change))
}

// ChangeKind classifies a mutation of the items collection.
type ChangeKind int

const (
	// ChangeInsert: Count items were inserted starting at Position.
	ChangeInsert ChangeKind = iota
	// ChangeRemove: Count items were removed starting at Position.
	ChangeRemove
	// ChangeReplace: Count items starting at Position were swapped in
	// place; the collection size is unchanged.
	ChangeReplace
	// ChangePermute: items were reordered; positions are unreliable and
	// cells are re-matched purely by item.
	ChangePermute
	// ChangeClear: the collection was emptied.
	ChangeClear
)

// Change describes a single mutation of the items collection.
type Change struct {
	Kind     ChangeKind
	Position int
	Count    int
}

// SliceSource is a Source backed by a plain slice, with mutators that emit
// the matching change descriptors. It is the simplest way to drive a
// container; hosts with their own data layer implement Source directly and
// call NotifyChanged themselves.
type SliceSource[T any] struct {
	items  []T
	notify func(Change)
}

// NewSliceSource returns a source over a copy of the given items.
func NewSliceSource[T any](items ...T) *SliceSource[T] {
	s := &SliceSource[T]{}
	s.items = append(s.items, items...)
	return s
}

// Count implements Source.
func (s *SliceSource[T]) Count() int { return len(s.items) }

// Get implements Source.
func (s *SliceSource[T]) Get(index int) T { return s.items[index] }

// Bind implements Observable. Only one listener is supported: the container
// currently displaying this source.
func (s *SliceSource[T]) Bind(fn func(Change)) { s.notify = fn }

// Items returns the backing slice. Mutating it directly bypasses change
// notifications; use the mutators instead.
func (s *SliceSource[T]) Items() []T { return s.items }

// Append adds items at the tail.
func (s *SliceSource[T]) Append(items ...T) {
	pos := len(s.items)
	s.items = append(s.items, items...)
	s.emit(Change{Kind: ChangeInsert, Position: pos, Count: len(items)})
}

// InsertAt adds items starting at the given position.
func (s *SliceSource[T]) InsertAt(pos int, items ...T) {
	s.items = append(s.items[:pos], append(append([]T{}, items...), s.items[pos:]...)...)
	s.emit(Change{Kind: ChangeInsert, Position: pos, Count: len(items)})
}

// RemoveAt removes n items starting at the given position.
func (s *SliceSource[T]) RemoveAt(pos, n int) {
	s.items = append(s.items[:pos], s.items[pos+n:]...)
	s.emit(Change{Kind: ChangeRemove, Position: pos, Count: n})
}

// SetAt replaces the item at the given position in place.
func (s *SliceSource[T]) SetAt(pos int, item T) {
	s.items[pos] = item
	s.emit(Change{Kind: ChangeReplace, Position: pos, Count: 1})
}

// Permute reorders the whole collection according to the given function,
// which must produce a permutation of the current items.
func (s *SliceSource[T]) Permute(fn func(items []T)) {
	fn(s.items)
	s.emit(Change{Kind: ChangePermute, Position: 0, Count: len(s.items)})
}

// Clear empties the collection.
func (s *SliceSource[T]) Clear() {
	s.items = s.items[:0]
	s.emit(Change{Kind: ChangeClear})
}

func (s *SliceSource[T]) emit(c Change) {
	if s.notify != nil {
		s.notify(c)
	}
}
