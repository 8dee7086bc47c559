// Package eventqueue keeps timed events that can be rescheduled or cancelled
// after they were queued. It is safe for concurrent use.
package eventqueue

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/navijation/njheap/util"
	"github.com/navijation/njheap/util/heap"
	"github.com/pkg/errors"
)

var ErrUnknownEvent = errors.New("unknown event")

type Event[V any] struct {
	ID      uuid.UUID
	At      time.Time
	Payload V
}

type Args struct {
	Capacity util.Optional[int]
	NewID    util.Optional[func() uuid.UUID]
}

type Queue[V any] struct {
	mu     sync.Mutex
	events *heap.Queue[Event[V], uuid.UUID, time.Time]
	newID  func() uuid.UUID
}

func New[V any](args Args) *Queue[V] {
	return &Queue[V]{
		events: heap.NewKeyedFunc(heap.FuncArgs[Event[V], uuid.UUID, time.Time]{
			Identity: func(e Event[V]) uuid.UUID { return e.ID },
			Priority: func(e Event[V]) time.Time { return e.At },
			Less:     time.Time.Before,
			Capacity: args.Capacity,
		}),
		newID: args.NewID.Or(uuid.New),
	}
}

func (me *Queue[V]) Len() int {
	me.mu.Lock()
	defer me.mu.Unlock()

	return me.events.Size()
}

// Schedule queues payload to fire at the given time and returns its ID.
func (me *Queue[V]) Schedule(at time.Time, payload V) uuid.UUID {
	me.mu.Lock()
	defer me.mu.Unlock()

	id := me.newID()
	me.events.Add(Event[V]{ID: id, At: at, Payload: payload})
	return id
}

// Reschedule moves a queued event to a new time and returns it as it was before
// the move.
func (me *Queue[V]) Reschedule(id uuid.UUID, at time.Time) (out Event[V], _ error) {
	me.mu.Lock()
	defer me.mu.Unlock()

	event, exists := me.events.Lookup(id)
	if !exists {
		return out, errors.Wrapf(ErrUnknownEvent, "reschedule %s", id)
	}

	moved := event
	moved.At = at
	return me.events.UpdateElement(id, moved)
}

func (me *Queue[V]) Cancel(id uuid.UUID) (Event[V], bool) {
	me.mu.Lock()
	defer me.mu.Unlock()

	return me.events.DeleteElement(id)
}

// Peek returns the earliest event without removing it.
func (me *Queue[V]) Peek() (Event[V], bool) {
	me.mu.Lock()
	defer me.mu.Unlock()

	return me.events.Peek()
}

// Next removes and returns the earliest event.
func (me *Queue[V]) Next() (Event[V], bool) {
	me.mu.Lock()
	defer me.mu.Unlock()

	return me.events.Poll()
}

// PopDue removes every event due at or before now and returns them earliest
// first.
func (me *Queue[V]) PopDue(now time.Time) (out []Event[V]) {
	me.mu.Lock()
	defer me.mu.Unlock()

	for {
		event, exists := me.events.Peek()
		if !exists || event.At.After(now) {
			return out
		}
		me.events.Poll()
		out = append(out, event)
	}
}
