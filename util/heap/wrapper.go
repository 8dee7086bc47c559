package heap

import "container/heap"

var _ heap.Interface = (*heapWrapper[any, int, int])(nil)

// heapWrapper drives container/heap. Every element move goes through Swap, Push
// or Pop, which keeps lookup pointing at each key's current position.
type heapWrapper[T any, K comparable, P any] struct {
	identity func(T) K
	priority func(T) P
	less     func(a, b P) bool

	items  []T
	lookup map[K]int
}

func (me *heapWrapper[T, K, P]) Len() int {
	return len(me.items)
}

func (me *heapWrapper[T, K, P]) Swap(i, j int) {
	me.items[i], me.items[j] = me.items[j], me.items[i]
	me.lookup[me.identity(me.items[i])] = i
	me.lookup[me.identity(me.items[j])] = j
}

func (me *heapWrapper[T, K, P]) Less(i, j int) bool {
	return me.lessValues(me.items[i], me.items[j])
}

func (me *heapWrapper[T, K, P]) lessValues(a, b T) bool {
	return me.less(me.priority(a), me.priority(b))
}

// Pop implements heap.Interface.
func (me *heapWrapper[T, K, P]) Pop() any {
	n := len(me.items) - 1
	out := me.items[n]

	// don't retain a reference to the removed element in the spare capacity
	var zero T
	me.items[n] = zero
	me.items = me.items[:n]

	delete(me.lookup, me.identity(out))
	return out
}

// Push implements heap.Interface.
func (me *heapWrapper[T, K, P]) Push(x any) {
	value := x.(T)
	me.lookup[me.identity(value)] = len(me.items)
	me.items = append(me.items, value)
}

// reindex rebuilds lookup from scratch for every live position.
func (me *heapWrapper[T, K, P]) reindex() {
	me.lookup = make(map[K]int, len(me.items))
	for i, item := range me.items {
		me.lookup[me.identity(item)] = i
	}
}
