package snake

// Direction represents the snake's committed movement direction.
// DirNone means no key has been accepted yet; the snake idles in place.
type Direction int

const (
	DirNone Direction = iota
	DirDown
	DirLeft
	DirUp
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Opposite returns the reverse of the direction. DirNone has no reverse.
func (d Direction) Opposite() Direction {
	switch d {
	case DirDown:
		return DirUp
	case DirUp:
		return DirDown
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// Offset returns the per-tick movement delta: dx along the row axis,
// dy along the column axis.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case DirDown:
		return 1, 0
	case DirUp:
		return -1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	default:
		return 0, 0
	}
}

// arbitrate resolves a candidate direction against the committed one.
// The candidate wins unless it is absent or the exact reverse of the
// committed direction, which would drive the head into the neck.
func arbitrate(committed, candidate Direction) Direction {
	if candidate == DirNone {
		return committed
	}
	if committed != DirNone && candidate == committed.Opposite() {
		return committed
	}
	return candidate
}
