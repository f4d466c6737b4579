// Package gameplay provides core game logic for player movement and interactions.
package gameplay

import (
	"fmt"

	"adventure/pkg/engine/input"
	"adventure/pkg/engine/world"
	"adventure/pkg/game/state"
)

// The one and only map
const (
	GridRows = 2
	GridCols = 2

	StartRow = 1
	StartCol = 0
)

type roomLayout struct {
	row, col    int
	description string
	lit         bool
	items       []world.Item
	chest       bool
}

var rooms = []roomLayout{
	{row: 0, col: 0, description: "Room 1", lit: true, items: []world.Item{world.Lamp, world.Key}},
	{row: 0, col: 1, description: "Room 2"},
	{row: 1, col: 0, description: "Room 3", lit: true, chest: true},
	{row: 1, col: 1, description: "Room 4"},
}

// passages are opened in both directions
var passages = []struct {
	row, col int
	dir      world.Direction
}{
	{0, 0, world.South}, // Room 1 <-> Room 3
	{0, 0, world.East},  // Room 1 <-> Room 2
	{0, 1, world.South}, // Room 2 <-> Room 4
	{1, 0, world.East},  // Room 3 <-> Room 4
}

// BuildWorld creates the 2x2 grid of rooms
func BuildWorld() *world.Grid {
	grid := world.NewGrid(GridRows, GridCols)

	for _, l := range rooms {
		r := world.NewRoom(l.description)
		r.SetLit(l.lit)
		r.SetChest(l.chest)
		for _, item := range l.items {
			r.PutItem(item)
		}
		grid.Place(l.row, l.col, r)
	}

	for _, p := range passages {
		grid.Connect(p.row, p.col, p.dir)
	}

	if err := grid.Validate(); err != nil {
		panic(fmt.Sprintf("invalid world: %v", err))
	}
	if err := CheckSolvable(grid, StartRow, StartCol); err != nil {
		panic(fmt.Sprintf("unwinnable world: %v", err))
	}

	return grid
}

// BuildGame creates a new game ready to play
func BuildGame() *state.Game {
	g := state.NewGame()
	Init(g)
	return g
}

// Init (re)builds the world and puts the adventurer, empty-handed, in Room 3
func Init(g *state.Game) {
	g.Grid = BuildWorld()
	g.Adventurer = state.NewAdventurer()
	g.Row = StartRow
	g.Col = StartCol

	g.ChestOpen = false
	g.PlayerQuit = false
	g.Alive = true
	g.LastDirection = input.ActionNone

	g.Turns = 0
	g.Messages = make([]state.Message, 0)
}

// Outcome is how a game ended
type Outcome int

const (
	OutcomePlaying Outcome = iota
	OutcomeWon
	OutcomeDied
	OutcomeQuit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeDied:
		return "died"
	case OutcomeQuit:
		return "quit"
	default:
		return "playing"
	}
}

// GameOutcome classifies the game. Opening the chest wins even if other flags are set.
func GameOutcome(g *state.Game) Outcome {
	switch {
	case g.ChestOpen:
		return OutcomeWon
	case !g.Alive:
		return OutcomeDied
	case g.PlayerQuit:
		return OutcomeQuit
	default:
		return OutcomePlaying
	}
}
