package domain

// Side is the side of a frame's content an outer node is placed on
type Side int

const (
	SideLeft Side = iota
	SideRight
	SideTop
	SideBottom
)

// String returns the string representation of a Side
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Opposite returns the opposite side
func (s Side) Opposite() Side {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	case SideTop:
		return SideBottom
	case SideBottom:
		return SideTop
	default:
		return s
	}
}

// Horizontal reports whether the side lies on the x axis
func (s Side) Horizontal() bool {
	return s == SideLeft || s == SideRight
}
