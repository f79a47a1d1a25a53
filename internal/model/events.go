package model

import "abstracta/internal/domain"

// EventType defines the type of model event
type EventType string

const (
	EventNodeCreated       EventType = "node_created"
	EventNodeDestroyed     EventType = "node_destroyed"
	EventNodeRenamed       EventType = "node_renamed"
	EventRectangleChanged  EventType = "rectangle_changed"
	EventChildAdded        EventType = "child_added"
	EventChildRemoved      EventType = "child_removed"
	EventConnectionAdded   EventType = "connection_added"
	EventConnectionRemoved EventType = "connection_removed"

	// EventChanged follows every batch of fine-grained events
	EventChanged EventType = "changed"
)

// Event describes one applied mutation. Fields that do not apply to the event
// type are left at their zero value.
type Event struct {
	Type       EventType         `json:"type"`
	Node       domain.NodeID     `json:"node"`
	Frame      domain.NodeID     `json:"frame,omitempty"`
	Parent     domain.NodeID     `json:"parent,omitempty"`
	Name       string            `json:"name,omitempty"`
	Connection domain.Connection `json:"connection"`
}

// Observer receives model events
type Observer interface {
	HandleModelEvent(Event)
}

// ObserverFunc adapts a function to the Observer interface
type ObserverFunc func(Event)

// HandleModelEvent calls f(e)
func (f ObserverFunc) HandleModelEvent(e Event) {
	f(e)
}

type subscription struct {
	id       int
	observer Observer
}

// dispatcher fans events out to observers in subscription order
type dispatcher struct {
	subscribers []subscription
	nextID      int
}

func (d *dispatcher) subscribe(o Observer) func() {
	d.nextID++
	id := d.nextID
	d.subscribers = append(d.subscribers, subscription{id: id, observer: o})
	return func() {
		for i, s := range d.subscribers {
			if s.id == id {
				d.subscribers = append(d.subscribers[:i:i], d.subscribers[i+1:]...)
				return
			}
		}
	}
}

// dispatch delivers the fine-grained events, then the derived EventChanged
func (d *dispatcher) dispatch(events ...Event) {
	if len(events) == 0 {
		return
	}
	subs := append([]subscription(nil), d.subscribers...)
	for _, e := range events {
		for _, s := range subs {
			s.observer.HandleModelEvent(e)
		}
	}
	for _, s := range subs {
		s.observer.HandleModelEvent(Event{Type: EventChanged})
	}
}
