package core

import "iter"

// minGrowth is the slack added on top of geometric growth so that a buffer
// grown from zero capacity still has room for the next few inserts.
const minGrowth = 16

type gapWindow struct {
	index int // first unused slot
	size  int // number of unused slots
}

// GapBuffer is a mutable sequence with a movable run of unused slots (the gap).
// Inserts and deletes happen at the gap, so edits that stay close together
// only pay for the distance the gap travels.
//
// Logical content is data[:gap.index] followed by data[gap.index+gap.size:].
type GapBuffer[T any] struct {
	data    []T
	gap     gapWindow
	growths int
}

// NewGapBuffer allocates capacity zero-valued slots; the whole store is gap.
func NewGapBuffer[T any](capacity int) *GapBuffer[T] {
	capacity = max(capacity, 0)
	return &GapBuffer[T]{
		data: make([]T, capacity),
		gap:  gapWindow{index: 0, size: capacity},
	}
}

// NewEmptyGapBuffer returns a buffer with no storage. The first insert grows it.
func NewEmptyGapBuffer[T any]() *GapBuffer[T] {
	return NewGapBuffer[T](0)
}

// Len returns the number of logical items.
func (g *GapBuffer[T]) Len() int {
	return len(g.data) - g.gap.size
}

// Cap returns the size of the backing store, gap included.
func (g *GapBuffer[T]) Cap() int {
	return len(g.data)
}

// GapIndex returns the logical offset at which the next insert or delete applies.
func (g *GapBuffer[T]) GapIndex() int {
	return g.gap.index
}

// GapSize returns the number of unused slots.
func (g *GapBuffer[T]) GapSize() int {
	return g.gap.size
}

// Insert writes items at the gap and leaves the gap right after them.
//
// When items do not fit, the part that fits is written first and the rest is
// spliced into a larger store with the fresh slack placed directly after the
// inserted items, never at the physical end of the store.
func (g *GapBuffer[T]) Insert(items ...T) {
	if len(items) == 0 {
		return
	}

	if len(items) <= g.gap.size {
		copy(g.data[g.gap.index:], items)
		g.gap.index += len(items)
		g.gap.size -= len(items)
		return
	}

	// Exhaust the current gap.
	fit := g.gap.size
	copy(g.data[g.gap.index:], items[:fit])
	g.gap.index += fit
	g.gap.size = 0
	rest := items[fit:]

	g.grow(rest)
}

// grow reallocates the store so that rest follows the gap index and the new
// slack follows rest. Caller must have exhausted the gap.
func (g *GapBuffer[T]) grow(rest []T) {
	oldCap := len(g.data)
	newCap := max(2*oldCap, oldCap+len(rest)+minGrowth)

	data := make([]T, newCap)
	copy(data, g.data[:g.gap.index])
	copy(data[g.gap.index:], rest)

	tail := g.data[g.gap.index:]
	copy(data[newCap-len(tail):], tail)

	g.data = data
	g.gap.index += len(rest)
	g.gap.size = newCap - oldCap - len(rest)
	g.growths++
}

// Delete removes up to count items immediately before the gap. Deleting past
// the start of the buffer clamps to the start.
func (g *GapBuffer[T]) Delete(count int) {
	if count <= 0 {
		return
	}

	index := max(0, g.gap.index-count)

	var zero T
	for i := index; i < g.gap.index; i++ {
		g.data[i] = zero
	}

	g.gap.size += g.gap.index - index
	g.gap.index = index
}

// MoveGap relocates the gap to the logical offset target, clamped to [0, Len()].
// The cost is proportional to the distance moved.
func (g *GapBuffer[T]) MoveGap(target int) {
	target = min(max(target, 0), g.Len())

	switch {
	case target < g.gap.index:
		// Shift data[target:index] to the right edge of the gap.
		n := g.gap.index - target
		end := g.gap.index + g.gap.size
		copy(g.data[end-n:end], g.data[target:g.gap.index])
	case target > g.gap.index:
		// Shift the items after the gap to its left edge.
		n := target - g.gap.index
		start := g.gap.index + g.gap.size
		copy(g.data[g.gap.index:g.gap.index+n], g.data[start:start+n])
	default:
		return
	}

	g.gap.index = target
}

// At returns the logical item at i.
func (g *GapBuffer[T]) At(i int) (T, bool) {
	if i < 0 || i >= g.Len() {
		var zero T
		return zero, false
	}
	if i < g.gap.index {
		return g.data[i], true
	}
	return g.data[i+g.gap.size], true
}

// All yields the logical items in order. Each call starts a fresh pass.
func (g *GapBuffer[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range g.data[:g.gap.index] {
			if !yield(v) {
				return
			}
		}
		for _, v := range g.data[g.gap.index+g.gap.size:] {
			if !yield(v) {
				return
			}
		}
	}
}

// Slice copies the logical items in [start, end) into a new slice.
func (g *GapBuffer[T]) Slice(start, end int) []T {
	start = max(start, 0)
	end = min(end, g.Len())
	if end <= start {
		return nil
	}

	out := make([]T, 0, end-start)
	for i := start; i < end; i++ {
		v, _ := g.At(i)
		out = append(out, v)
	}
	return out
}

// Items copies the whole logical content.
func (g *GapBuffer[T]) Items() []T {
	out := make([]T, 0, g.Len())
	out = append(out, g.data[:g.gap.index]...)
	return append(out, g.data[g.gap.index+g.gap.size:]...)
}

// Clone returns an independent copy with the same layout.
func (g *GapBuffer[T]) Clone() *GapBuffer[T] {
	data := make([]T, len(g.data))
	copy(data, g.data)
	return &GapBuffer[T]{data: data, gap: g.gap}
}
