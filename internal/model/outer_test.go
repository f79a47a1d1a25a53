package model

import (
	"testing"

	"abstracta/internal/domain"
)

func TestDominantSide(t *testing.T) {
	tests := []struct {
		name string
		d    domain.Point
		want domain.Side
	}{
		{"zero vector", domain.Pt(0, 0), domain.SideLeft},
		{"left", domain.Pt(-10, 3), domain.SideLeft},
		{"right", domain.Pt(10, -3), domain.SideRight},
		{"above", domain.Pt(2, -10), domain.SideTop},
		{"below", domain.Pt(-2, 10), domain.SideBottom},
		{"tie goes horizontal", domain.Pt(5, 5), domain.SideRight},
		{"negative tie", domain.Pt(-5, -5), domain.SideLeft},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DominantSide(tt.d); got != tt.want {
				t.Errorf("DominantSide(%v) = %s, want %s", tt.d, got, tt.want)
			}
		})
	}
}

func TestOuterRect(t *testing.T) {
	content := domain.R(0, 0, 200, 100)
	size := domain.Size{W: 100, H: 50}

	tests := []struct {
		side domain.Side
		want domain.Rect
	}{
		{domain.SideLeft, domain.R(-150, 25, 100, 50)},
		{domain.SideRight, domain.R(250, 25, 100, 50)},
		{domain.SideTop, domain.R(50, -100, 100, 50)},
		{domain.SideBottom, domain.R(50, 150, 100, 50)},
	}
	for _, tt := range tests {
		t.Run(tt.side.String(), func(t *testing.T) {
			if got := OuterRect(content, tt.side, size, 50); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestAddConnectionPlacesOuterNodes(t *testing.T) {
	m := New()
	a := m.CreateNode()
	b := m.CreateNode()
	m.SetRectangle(a, domain.R(0, 0, 100, 50), domain.RootID)
	m.SetRectangle(b, domain.R(300, 0, 100, 50), domain.RootID)

	inner := m.CreateNode()
	m.AddChild(b, inner)
	m.SetRectangle(inner, domain.R(0, 0, 200, 100), b)

	if err := m.AddConnection(a, b); err != nil {
		t.Fatalf("AddConnection: %v", err)
	}

	t.Run("source appears left of target content", func(t *testing.T) {
		want := domain.R(-150, 25, 100, 50)
		if got := mustRect(t, m, a, b); got != want {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("target appears right of empty source frame", func(t *testing.T) {
		want := domain.R(50, -25, 100, 50)
		if got := mustRect(t, m, b, a); got != want {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("placement is not recomputed when children move", func(t *testing.T) {
		m.SetRectangle(inner, domain.R(500, 500, 10, 10), b)
		want := domain.R(-150, 25, 100, 50)
		if got := mustRect(t, m, a, b); got != want {
			t.Errorf("expected %v, got %v", want, got)
		}
	})
}

func TestAddConnectionNonSiblings(t *testing.T) {
	m := New()
	a := m.CreateNode()
	b := m.CreateNode()
	deep := m.CreateNode()
	m.AddChild(b, deep)

	m.AddConnection(a, deep)

	if m.HasRectangle(a, deep) || m.HasRectangle(deep, a) {
		t.Error("expected no outer rectangles between non-siblings")
	}
}

func TestAddConnectionOuterBoxOption(t *testing.T) {
	m := New(WithOuterBox(domain.Size{W: 40, H: 20}, 10))
	a := m.CreateNode()
	b := m.CreateNode()
	m.AddConnection(a, b)

	want := domain.R(-50, -10, 40, 20)
	if got := mustRect(t, m, a, b); got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}
