package world

import (
	"errors"
	"fmt"
)

var (
	// ErrUnplacedRoom means a grid position was left without a room
	ErrUnplacedRoom = errors.New("no room placed")
	// ErrExitMismatch means an exit has no matching way back
	ErrExitMismatch = errors.New("exit has no reciprocal")
)

// Grid is a fixed rows x cols layout of rooms.
// All access is bounds-checked; out of range positions yield nil.
type Grid struct {
	rooms [][]*Room
	rows  int
	cols  int
}

// NewGrid creates an empty grid with the given dimensions
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	g := &Grid{
		rooms: make([][]*Room, rows),
		rows:  rows,
		cols:  cols,
	}
	for row := range g.rooms {
		g.rooms[row] = make([]*Room, cols)
	}
	return g
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Place puts a room at the given position. Returns false if out of bounds.
func (g *Grid) Place(row, col int, r *Room) bool {
	if r == nil || !g.IsValidPosition(row, col) {
		return false
	}
	r.Row = row
	r.Col = col
	g.rooms[row][col] = r
	return true
}

// GetRoom returns the room at the given position, or nil if out of bounds
func (g *Grid) GetRoom(row, col int) *Room {
	if !g.IsValidPosition(row, col) {
		return nil
	}
	return g.rooms[row][col]
}

// GetRoomRelative returns the room one step from (row, col) in the given direction
func (g *Grid) GetRoomRelative(row, col int, dir Direction) *Room {
	if !dir.IsValid() {
		return nil
	}
	rowRel, colRel := dir.Delta()
	return g.GetRoom(row+rowRel, col+colRel)
}

// Connect opens an exit from (row, col) in dir and the matching exit back.
// Returns false if either end has no room.
func (g *Grid) Connect(row, col int, dir Direction) bool {
	from := g.GetRoom(row, col)
	to := g.GetRoomRelative(row, col, dir)
	if from == nil || to == nil {
		return false
	}
	from.SetExit(dir, true)
	to.SetExit(dir.Opposite(), true)
	return true
}

// ForEachRoom calls fn for every placed room in row-major order
func (g *Grid) ForEachRoom(fn func(row, col int, r *Room)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if r := g.rooms[row][col]; r != nil {
				fn(row, col, r)
			}
		}
	}
}

// Validate checks that every position holds a room and that every exit
// leads to a neighbor with an exit pointing back.
func (g *Grid) Validate() error {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			r := g.rooms[row][col]
			if r == nil {
				return fmt.Errorf("grid position %d,%d: %w", row, col, ErrUnplacedRoom)
			}

			for _, dir := range r.Exits() {
				neighbor := g.GetRoomRelative(row, col, dir)
				if neighbor == nil {
					return fmt.Errorf("room %q at %d,%d: %s exit leads off the grid: %w",
						r.Description(), r.Row, r.Col, dir, ErrExitMismatch)
				}
				if !neighbor.HasExit(dir.Opposite()) {
					return fmt.Errorf("room %q at %d,%d: %s exit: %q at %d,%d has no %s exit: %w",
						r.Description(), r.Row, r.Col, dir,
						neighbor.Description(), neighbor.Row, neighbor.Col, dir.Opposite(), ErrExitMismatch)
				}
			}
		}
	}
	return nil
}
