package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const EventCursorMoved = "cursor_moved"

// CursorMoved carries a pointer position in screen pixels.
type CursorMoved struct {
	X float64
	Y float64
}

// EventQueue is a simple FIFO queue that is cleared at the end of every
// frame.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Take removes and returns the events of one type, keeping the rest queued
// in order.
func (q *EventQueue) Take(eventType string) []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	var taken []Event
	kept := q.items[:0]
	for _, evt := range q.items {
		if evt.Type == eventType {
			taken = append(taken, evt)
			continue
		}
		kept = append(kept, evt)
	}
	q.items = kept
	return taken
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
