package world

// Direction is one of the four compass directions a room can have an exit in.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// Directions returns the compass directions in display order
func Directions() []Direction {
	return []Direction{North, South, East, West}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// IsValid reports whether d is one of the four compass directions
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Opposite returns the direction that leads back the way d came
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// Delta returns the row and column offsets of one step in direction d.
// Row 0 is the northern edge of the grid.
func (d Direction) Delta() (rowDelta, colDelta int) {
	switch d {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case East:
		return 0, 1
	case West:
		return 0, -1
	default:
		return 0, 0
	}
}
