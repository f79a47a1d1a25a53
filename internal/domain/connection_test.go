package domain

import "testing"

func TestConnection(t *testing.T) {
	c := Conn(1, 2)

	if !c.Involves(1) || !c.Involves(2) || c.Involves(3) {
		t.Error("unexpected Involves result")
	}
	if c.OtherEnd(1) != 2 || c.OtherEnd(2) != 1 {
		t.Error("unexpected OtherEnd result")
	}
	if c.Reversed() != Conn(2, 1) {
		t.Errorf("expected 2->1, got %v", c.Reversed())
	}
	if !c.SameLink(Conn(2, 1)) || c.SameLink(Conn(1, 3)) {
		t.Error("unexpected SameLink result")
	}
	if c.String() != "1->2" {
		t.Errorf("expected 1->2, got %s", c.String())
	}
}

func TestSide(t *testing.T) {
	tests := []struct {
		side       Side
		name       string
		opposite   Side
		horizontal bool
	}{
		{SideLeft, "left", SideRight, true},
		{SideRight, "right", SideLeft, true},
		{SideTop, "top", SideBottom, false},
		{SideBottom, "bottom", SideTop, false},
	}

	for _, tt := range tests {
		if tt.side.String() != tt.name {
			t.Errorf("Side(%d).String() = %s, want %s", tt.side, tt.side.String(), tt.name)
		}
		if tt.side.Opposite() != tt.opposite {
			t.Errorf("%s.Opposite() = %s, want %s", tt.side, tt.side.Opposite(), tt.opposite)
		}
		if tt.side.Horizontal() != tt.horizontal {
			t.Errorf("%s.Horizontal() = %v, want %v", tt.side, tt.side.Horizontal(), tt.horizontal)
		}
	}
}

func TestOutlineCounts(t *testing.T) {
	o := NewOutline()
	o.AddNode(OutlineNode{
		Name:        "Car",
		Connections: []string{"Bike"},
		Children: []OutlineNode{
			{Name: "Engine", Connections: []string{"Wheels", "../Bike"}},
			{Name: "Wheels"},
		},
	})
	o.AddNode(OutlineNode{Name: "Bike"})

	if o.Count() != 4 {
		t.Errorf("Count() = %d, want 4", o.Count())
	}
	if o.ConnectionCount() != 3 {
		t.Errorf("ConnectionCount() = %d, want 3", o.ConnectionCount())
	}
}
