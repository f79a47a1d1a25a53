package model

import (
	"errors"
	"reflect"
	"testing"

	"abstracta/internal/domain"
)

// recorder collects every event delivered to it
type recorder struct {
	events []Event
}

func (r *recorder) HandleModelEvent(e Event) {
	r.events = append(r.events, e)
}

func (r *recorder) types() []EventType {
	types := make([]EventType, len(r.events))
	for i, e := range r.events {
		types[i] = e.Type
	}
	return types
}

func mustRect(t *testing.T, m *Model, id, frame domain.NodeID) domain.Rect {
	t.Helper()
	r, err := m.Rectangle(id, frame)
	if err != nil {
		t.Fatalf("Rectangle(%d, %d): %v", id, frame, err)
	}
	return r
}

func TestNew(t *testing.T) {
	m := New()

	if !m.Exists(domain.RootID) {
		t.Fatal("expected root to exist")
	}
	if m.Len() != 1 {
		t.Errorf("expected 1 node, got %d", m.Len())
	}
	if _, ok := m.Parent(domain.RootID); ok {
		t.Error("expected root to have no parent")
	}
	if m.NextID() != 1 {
		t.Errorf("expected next id 1, got %d", m.NextID())
	}
}

func TestCreateNode(t *testing.T) {
	t.Run("assigns sequential ids under root", func(t *testing.T) {
		m := New()
		a := m.CreateNode()
		b := m.CreateNode()

		if a != 1 || b != 2 {
			t.Errorf("expected ids 1 and 2, got %d and %d", a, b)
		}
		if got := m.Children(domain.RootID); !reflect.DeepEqual(got, []domain.NodeID{a, b}) {
			t.Errorf("expected root children [1 2], got %v", got)
		}
		if p, ok := m.Parent(a); !ok || p != domain.RootID {
			t.Errorf("expected parent root, got %d (%v)", p, ok)
		}
		if m.Name(a) != "" {
			t.Errorf("expected empty default name, got %q", m.Name(a))
		}
	})

	t.Run("explicit id after destroy is accepted", func(t *testing.T) {
		m := New()
		a := m.CreateNode()
		m.CreateNode()
		if err := m.DestroyNode(a); err != nil {
			t.Fatalf("DestroyNode: %v", err)
		}

		got, err := m.CreateNodeWithID(a)
		if err != nil {
			t.Fatalf("CreateNodeWithID: %v", err)
		}
		if got != a {
			t.Errorf("expected id %d, got %d", a, got)
		}
		if m.NextID() != 3 {
			t.Errorf("expected generator untouched at 3, got %d", m.NextID())
		}
	})

	t.Run("explicit id rules", func(t *testing.T) {
		m := New()
		a := m.CreateNode()

		tests := []struct {
			name string
			id   domain.NodeID
			want error
		}{
			{"live id", a, ErrIDInUse},
			{"root id", domain.RootID, ErrIDInUse},
			{"at generator", m.NextID(), ErrIDOutOfRange},
			{"above generator", m.NextID() + 5, ErrIDOutOfRange},
			{"negative", -1, ErrIDOutOfRange},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				before := m.Len()
				_, err := m.CreateNodeWithID(tt.id)
				if !errors.Is(err, tt.want) {
					t.Errorf("expected %v, got %v", tt.want, err)
				}
				if m.Len() != before {
					t.Error("expected no node to be created")
				}
			})
		}
	})
}

func TestDestroyNode(t *testing.T) {
	t.Run("leaves no trace", func(t *testing.T) {
		m := New()
		a := m.CreateNode()
		b := m.CreateNode()
		child := m.CreateNode()
		if err := m.AddChild(a, child); err != nil {
			t.Fatal(err)
		}
		m.SetName(a, "A")
		m.SetRectangle(a, domain.R(0, 0, 10, 10), domain.RootID)
		m.SetRectangle(child, domain.R(0, 0, 10, 10), a)
		m.SetRectangle(b, domain.R(0, 0, 10, 10), a)
		m.AddConnection(a, b)
		m.AddConnection(b, a)

		if err := m.DestroyNode(a); err != nil {
			t.Fatalf("DestroyNode: %v", err)
		}

		if m.Name(a) != "" {
			t.Errorf("expected empty name, got %q", m.Name(a))
		}
		if len(m.Children(a)) != 0 {
			t.Errorf("expected no children, got %v", m.Children(a))
		}
		if _, ok := m.Parent(a); ok {
			t.Error("expected no parent")
		}
		for _, c := range m.Connections() {
			if c.Involves(a) {
				t.Errorf("connection %v still references destroyed node", c)
			}
		}
		if m.HasRectangle(b, a) {
			t.Error("expected rectangles in the destroyed frame to be gone")
		}
		if _, err := m.Rectangle(a, domain.RootID); !errors.Is(err, ErrUnknownNode) {
			t.Errorf("expected ErrUnknownNode, got %v", err)
		}
		if m.Exists(child) {
			t.Error("expected descendants to be destroyed")
		}
		if got := m.Children(domain.RootID); !reflect.DeepEqual(got, []domain.NodeID{b}) {
			t.Errorf("expected root children [%d], got %v", b, got)
		}
	})

	t.Run("unknown and root fail", func(t *testing.T) {
		m := New()
		if err := m.DestroyNode(42); !errors.Is(err, ErrUnknownNode) {
			t.Errorf("expected ErrUnknownNode, got %v", err)
		}
		if err := m.DestroyNode(domain.RootID); !errors.Is(err, ErrRootNode) {
			t.Errorf("expected ErrRootNode, got %v", err)
		}
	})

	t.Run("emits removals before destruction", func(t *testing.T) {
		m := New()
		a := m.CreateNode()
		b := m.CreateNode()
		m.AddConnection(a, b)

		rec := &recorder{}
		m.Subscribe(rec)
		m.DestroyNode(a)

		want := []EventType{EventChildRemoved, EventConnectionRemoved, EventNodeDestroyed, EventChanged}
		if got := rec.types(); !reflect.DeepEqual(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})
}

func TestSoftFailQueries(t *testing.T) {
	m := New()
	unknown := domain.NodeID(99)

	if m.Name(unknown) != "" {
		t.Error("expected empty name")
	}
	if _, ok := m.Parent(unknown); ok {
		t.Error("expected no parent")
	}
	if m.Children(unknown) != nil {
		t.Error("expected nil children")
	}
	if len(m.Outgoing(unknown))+len(m.Incoming(unknown))+len(m.ConnectionsOf(unknown)) != 0 {
		t.Error("expected no connections")
	}
}

func TestRectangle(t *testing.T) {
	m := New()
	a := m.CreateNode()
	b := m.CreateNode()
	want := domain.R(10, 20, 150, 50)

	if err := m.SetRectangle(a, want, domain.RootID); err != nil {
		t.Fatalf("SetRectangle: %v", err)
	}
	if got := mustRect(t, m, a, domain.RootID); got != want {
		t.Errorf("expected %v, got %v", want, got)
	}

	t.Run("frame without rectangles", func(t *testing.T) {
		if _, err := m.Rectangle(a, b); !errors.Is(err, ErrNoFrame) {
			t.Errorf("expected ErrNoFrame, got %v", err)
		}
	})

	t.Run("node missing in existing frame", func(t *testing.T) {
		if _, err := m.Rectangle(b, domain.RootID); !errors.Is(err, ErrNoRectangle) {
			t.Errorf("expected ErrNoRectangle, got %v", err)
		}
	})

	t.Run("unknown node", func(t *testing.T) {
		if _, err := m.Rectangle(77, domain.RootID); !errors.Is(err, ErrUnknownNode) {
			t.Errorf("expected ErrUnknownNode, got %v", err)
		}
		if err := m.SetRectangle(a, want, 77); !errors.Is(err, ErrUnknownNode) {
			t.Errorf("expected ErrUnknownNode for unknown frame, got %v", err)
		}
	})
}

func TestAddChild(t *testing.T) {
	t.Run("moves child between parents", func(t *testing.T) {
		m := New()
		p1 := m.CreateNode()
		p2 := m.CreateNode()
		c := m.CreateNode()

		m.AddChild(p1, c)
		if err := m.AddChild(p2, c); err != nil {
			t.Fatalf("AddChild: %v", err)
		}

		if len(m.Children(p1)) != 0 {
			t.Errorf("expected p1 to lose child, got %v", m.Children(p1))
		}
		if p, _ := m.Parent(c); p != p2 {
			t.Errorf("expected parent %d, got %d", p2, p)
		}
	})

	t.Run("repeat is a silent no-op", func(t *testing.T) {
		m := New()
		p := m.CreateNode()
		c := m.CreateNode()
		m.AddChild(p, c)

		rec := &recorder{}
		m.Subscribe(rec)
		if err := m.AddChild(p, c); err != nil {
			t.Fatalf("AddChild: %v", err)
		}
		if len(rec.events) != 0 {
			t.Errorf("expected no events, got %v", rec.types())
		}
		if len(m.Children(p)) != 1 {
			t.Errorf("expected one child, got %v", m.Children(p))
		}
	})

	t.Run("rejects cycles", func(t *testing.T) {
		m := New()
		a := m.CreateNode()
		b := m.CreateNode()
		m.AddChild(a, b)

		if err := m.AddChild(b, a); !errors.Is(err, ErrCycle) {
			t.Errorf("expected ErrCycle, got %v", err)
		}
		if err := m.AddChild(a, a); !errors.Is(err, ErrCycle) {
			t.Errorf("expected ErrCycle for self, got %v", err)
		}
		if err := m.AddChild(a, domain.RootID); !errors.Is(err, ErrRootNode) {
			t.Errorf("expected ErrRootNode, got %v", err)
		}
	})
}

func TestConnections(t *testing.T) {
	t.Run("duplicate add is idempotent", func(t *testing.T) {
		m := New()
		a := m.CreateNode()
		b := m.CreateNode()

		m.AddConnection(a, b)
		m.AddConnection(a, b)

		if got := m.Connections(); len(got) != 1 || got[0] != domain.Conn(a, b) {
			t.Errorf("expected exactly one connection, got %v", got)
		}
	})

	t.Run("direction is kept", func(t *testing.T) {
		m := New()
		a := m.CreateNode()
		b := m.CreateNode()
		m.AddConnection(a, b)
		m.AddConnection(b, a)

		if len(m.Outgoing(a)) != 1 || len(m.Incoming(a)) != 1 || len(m.ConnectionsOf(a)) != 2 {
			t.Errorf("unexpected connection queries: out=%v in=%v all=%v",
				m.Outgoing(a), m.Incoming(a), m.ConnectionsOf(a))
		}
	})

	t.Run("unknown endpoint fails", func(t *testing.T) {
		m := New()
		a := m.CreateNode()
		if err := m.AddConnection(a, 9); !errors.Is(err, ErrUnknownNode) {
			t.Errorf("expected ErrUnknownNode, got %v", err)
		}
		if len(m.Connections()) != 0 {
			t.Error("expected nothing to be added")
		}
	})

	t.Run("remove always notifies", func(t *testing.T) {
		m := New()
		a := m.CreateNode()
		b := m.CreateNode()
		m.AddConnection(a, b)

		rec := &recorder{}
		m.Subscribe(rec)
		m.RemoveConnection(b, a)
		m.RemoveConnection(a, b)

		if len(m.Connections()) != 0 {
			t.Errorf("expected no connections, got %v", m.Connections())
		}
		want := []EventType{EventConnectionRemoved, EventChanged, EventConnectionRemoved, EventChanged}
		if got := rec.types(); !reflect.DeepEqual(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})
}

func TestNodesWithName(t *testing.T) {
	m := New()
	a := m.CreateNode()
	b := m.CreateNode()
	m.CreateNode()
	m.SetName(a, "Wheel")
	m.SetName(b, "Wheel")

	if got := m.NodesWithName("Wheel"); !reflect.DeepEqual(got, []domain.NodeID{a, b}) {
		t.Errorf("expected [%d %d], got %v", a, b, got)
	}
	if err := m.SetName(50, "x"); !errors.Is(err, ErrUnknownNode) {
		t.Errorf("expected ErrUnknownNode, got %v", err)
	}
}

func TestIsAbstraction(t *testing.T) {
	m := New()
	outer := m.CreateNode()
	inner := m.CreateNode()
	if m.IsAbstraction(outer) {
		t.Error("expected a leaf not to be an abstraction")
	}
	if err := m.AddChild(outer, inner); err != nil {
		t.Fatal(err)
	}
	if !m.IsAbstraction(outer) || m.IsAbstraction(inner) {
		t.Error("expected only the parent to be an abstraction")
	}
	if m.IsAbstraction(99) {
		t.Error("expected unknown node not to be an abstraction")
	}
}

func TestSubscribe(t *testing.T) {
	t.Run("fine-grained then changed to every observer", func(t *testing.T) {
		m := New()
		var order []string
		m.Subscribe(ObserverFunc(func(e Event) { order = append(order, "a:"+string(e.Type)) }))
		m.Subscribe(ObserverFunc(func(e Event) { order = append(order, "b:"+string(e.Type)) }))

		m.CreateNode()

		want := []string{
			"a:node_created", "b:node_created",
			"a:child_added", "b:child_added",
			"a:changed", "b:changed",
		}
		if !reflect.DeepEqual(order, want) {
			t.Errorf("expected %v, got %v", want, order)
		}
	})

	t.Run("observers see applied state", func(t *testing.T) {
		m := New()
		var seen string
		m.Subscribe(ObserverFunc(func(e Event) {
			if e.Type == EventNodeRenamed {
				seen = m.Name(e.Node)
			}
		}))
		a := m.CreateNode()
		m.SetName(a, "Engine")

		if seen != "Engine" {
			t.Errorf("expected observer to read new name, got %q", seen)
		}
	})

	t.Run("unsubscribe stops delivery", func(t *testing.T) {
		m := New()
		rec := &recorder{}
		unsubscribe := m.Subscribe(rec)
		unsubscribe()
		m.CreateNode()

		if len(rec.events) != 0 {
			t.Errorf("expected no events, got %v", rec.types())
		}
	})
}
