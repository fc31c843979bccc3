package ecs

import "reflect"

// EventQueue is a simple FIFO queue.
type EventQueue[T any] struct {
	items []T
}

// Push adds an event.
func (q *EventQueue[T]) Push(evt T) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue. Events pushed while the
// caller walks the returned slice land in the next Drain.
func (q *EventQueue[T]) Drain() []T {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of queued events.
func (q *EventQueue[T]) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// EventBus is a typed publish/subscribe bus. Delivery is synchronous, in
// subscription order.
type EventBus struct {
	handlers map[reflect.Type][]any
}

// Subscribe registers fn for events of type T.
func Subscribe[T any](b *EventBus, fn func(T)) {
	if b == nil || fn == nil {
		return
	}
	if b.handlers == nil {
		b.handlers = make(map[reflect.Type][]any)
	}
	t := reflect.TypeFor[T]()
	b.handlers[t] = append(b.handlers[t], fn)
}

// Publish delivers evt to every subscriber of T.
func Publish[T any](b *EventBus, evt T) {
	if b == nil {
		return
	}
	for _, h := range b.handlers[reflect.TypeFor[T]()] {
		h.(func(T))(evt)
	}
}

// SubscribeQueue subscribes a queue that collects every T for later draining.
func SubscribeQueue[T any](b *EventBus) *EventQueue[T] {
	q := &EventQueue[T]{}
	Subscribe(b, q.Push)
	return q
}
