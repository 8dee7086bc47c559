// Package heap implements a binary min-heap whose elements can be read, updated
// and deleted by key in O(log n), in addition to the usual push and pop of the
// smallest element.
//
// Keys come from an identity function and must be unique among the elements
// present in a queue at the same time. Adding a second element under a key that
// is already present corrupts the key index; use Contains to guard if needed.
//
// A Queue is not safe for concurrent use.
package heap

import (
	"cmp"
	"container/heap"
	"iter"

	"github.com/navijation/njheap/util"
	"github.com/pkg/errors"
)

var ErrKeyNotFound = errors.New("key not found")

type Queue[T any, K comparable, P any] struct {
	wrapper heapWrapper[T, K, P]
}

type Args[T any, K comparable, P cmp.Ordered] struct {
	Identity func(T) K
	Priority func(T) P

	// Less orders priorities; defaults to cmp.Less. Inverting it gives a max-heap.
	Less     util.Optional[func(a, b P) bool]
	Capacity util.Optional[int]
}

// FuncArgs is Args for priorities without a built-in order, such as time.Time.
type FuncArgs[T any, K comparable, P any] struct {
	Identity func(T) K
	Priority func(T) P
	Less     func(a, b P) bool
	Capacity util.Optional[int]
}

// New returns an empty queue of plain values, each being its own key and
// priority.
func New[T cmp.Ordered]() *Queue[T, T, T] {
	return NewKeyed(Args[T, T, T]{
		Identity: identity[T],
		Priority: identity[T],
	})
}

func NewKeyed[T any, K comparable, P cmp.Ordered](args Args[T, K, P]) *Queue[T, K, P] {
	return NewKeyedFunc(FuncArgs[T, K, P]{
		Identity: args.Identity,
		Priority: args.Priority,
		Less:     args.Less.Or(cmp.Less[P]),
		Capacity: args.Capacity,
	})
}

func NewKeyedFunc[T any, K comparable, P any](args FuncArgs[T, K, P]) *Queue[T, K, P] {
	if args.Identity == nil || args.Priority == nil || args.Less == nil {
		panic("heap: Identity, Priority and Less must all be provided")
	}

	capacity := max(args.Capacity.Or(0), 0)
	return &Queue[T, K, P]{
		wrapper: heapWrapper[T, K, P]{
			identity: args.Identity,
			priority: args.Priority,
			less:     args.Less,
			items:    make([]T, 0, capacity),
			lookup:   make(map[K]int, capacity),
		},
	}
}

func identity[T any](v T) T {
	return v
}

// Heapify replaces the contents of the queue with items and restores the heap
// order in O(n). The queue takes ownership of items.
func (me *Queue[T, K, P]) Heapify(items []T) {
	me.wrapper.items = items
	me.wrapper.reindex()
	heap.Init(&me.wrapper)
}

func (me *Queue[T, K, P]) Size() int {
	return len(me.wrapper.items)
}

func (me *Queue[T, K, P]) IsEmpty() bool {
	return len(me.wrapper.items) == 0
}

func (me *Queue[T, K, P]) Add(value T) {
	heap.Push(&me.wrapper, value)
}

// Peek returns a smallest element without removing it.
func (me *Queue[T, K, P]) Peek() (out T, exists bool) {
	if me.IsEmpty() {
		return out, false
	}
	return me.wrapper.items[0], true
}

// Poll removes and returns a smallest element.
func (me *Queue[T, K, P]) Poll() (out T, exists bool) {
	if me.IsEmpty() {
		return out, false
	}
	return heap.Pop(&me.wrapper).(T), true
}

// ReplaceTop removes and returns a smallest element and adds value in its
// place, leaving the size unchanged. It is cheaper than Poll followed by Add.
// Nothing is added when the queue is empty.
func (me *Queue[T, K, P]) ReplaceTop(value T) (out T, exists bool) {
	if me.IsEmpty() {
		return out, false
	}

	w := &me.wrapper
	out = w.items[0]
	delete(w.lookup, w.identity(out))

	w.items[0] = value
	w.lookup[w.identity(value)] = 0
	me.siftDown(0)

	return out, true
}

func (me *Queue[T, K, P]) Contains(key K) bool {
	_, exists := me.wrapper.lookup[key]
	return exists
}

func (me *Queue[T, K, P]) Lookup(key K) (out T, exists bool) {
	idx, exists := me.wrapper.lookup[key]
	if !exists {
		return out, false
	}
	return me.wrapper.items[idx], true
}

// GetElement returns the priority of the element stored under key.
func (me *Queue[T, K, P]) GetElement(key K) (out P, _ error) {
	value, exists := me.Lookup(key)
	if !exists {
		return out, errors.Wrapf(ErrKeyNotFound, "get %v", key)
	}
	return me.wrapper.priority(value), nil
}

// UpdateElement replaces the element stored under key with value and returns
// the previous element. The new element is indexed by its own identity, which
// does not have to equal key.
func (me *Queue[T, K, P]) UpdateElement(key K, value T) (out T, _ error) {
	w := &me.wrapper
	idx, exists := w.lookup[key]
	if !exists {
		return out, errors.Wrapf(ErrKeyNotFound, "update %v", key)
	}

	out = w.items[idx]
	delete(w.lookup, w.identity(out))

	w.items[idx] = value
	w.lookup[w.identity(value)] = idx

	// a smaller priority can only move up; anything else can only move down
	if w.lessValues(value, out) {
		me.siftUp(idx)
	} else {
		me.siftDown(idx)
	}

	return out, nil
}

// DeleteElement removes and returns the element stored under key. The backing
// capacity is kept; call Trim to release it.
func (me *Queue[T, K, P]) DeleteElement(key K) (out T, exists bool) {
	idx, exists := me.wrapper.lookup[key]
	if !exists {
		return out, false
	}
	return heap.Remove(&me.wrapper, idx).(T), true
}

// Trim releases spare capacity held by the queue.
func (me *Queue[T, K, P]) Trim() {
	items := make([]T, len(me.wrapper.items))
	copy(items, me.wrapper.items)
	me.wrapper.items = items
	me.wrapper.reindex()
}

// All yields the elements in heap order, which is only sorted at the root. The
// queue must not be modified during iteration.
func (me *Queue[T, K, P]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range me.wrapper.items {
			if !yield(item) {
				return
			}
		}
	}
}

func (me *Queue[T, K, P]) siftUp(idx int) {
	w := &me.wrapper
	for idx > 0 {
		parent := (idx - 1) / 2
		if !w.Less(idx, parent) {
			break
		}
		w.Swap(idx, parent)
		idx = parent
	}
}

func (me *Queue[T, K, P]) siftDown(idx int) {
	w := &me.wrapper
	n := len(w.items)
	for {
		child := 2*idx + 1
		if child >= n || child < 0 {
			break
		}
		if right := child + 1; right < n && w.Less(right, child) {
			child = right
		}
		if !w.Less(child, idx) {
			break
		}
		w.Swap(idx, child)
		idx = child
	}
}
