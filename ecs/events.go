package ecs

// Event is a transient notification emitted by one system for another to
// consume within the same tick.
type Event struct {
	Type string
	Data any
}

// EventQueue is a simple FIFO holding one tick's events. It is cleared on
// EndUpdate; events are never carried across ticks.
type EventQueue struct {
	items []Event
}

// Emit appends an event.
func (q *EventQueue) Emit(evt Event) {
	q.items = append(q.items, evt)
}

// Drain returns all queued events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	return len(q.items)
}

func (q *EventQueue) flush() {
	q.items = nil
}
