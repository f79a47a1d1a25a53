package view

// EventType defines the type of view event
type EventType string

const (
	EventDisplayedFrameChanged EventType = "displayed_frame_changed"
	EventViewportChanged       EventType = "viewport_changed"
	EventSelectionChanged      EventType = "selection_changed"
	EventHoverChanged          EventType = "hover_changed"
	EventRenameChanged         EventType = "rename_changed"

	// EventChanged follows every batch of specific events
	EventChanged EventType = "changed"
)

// Event describes a change of view state
type Event struct {
	Type EventType `json:"type"`
}

// Observer receives view events
type Observer interface {
	HandleViewEvent(Event)
}

// ObserverFunc adapts a function to the Observer interface
type ObserverFunc func(Event)

// HandleViewEvent calls f(e)
func (f ObserverFunc) HandleViewEvent(e Event) {
	f(e)
}

type subscription struct {
	id       int
	observer Observer
}

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

func (d *dispatcher) dispatch(types ...EventType) {
	if len(types) == 0 {
		return
	}
	subs := append([]subscription(nil), d.subscribers...)
	for _, t := range types {
		for _, s := range subs {
			s.observer.HandleViewEvent(Event{Type: t})
		}
	}
	for _, s := range subs {
		s.observer.HandleViewEvent(Event{Type: EventChanged})
	}
}
