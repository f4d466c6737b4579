package state

import (
	"github.com/google/uuid"

	"adventure/pkg/engine/input"
	"adventure/pkg/engine/world"
)

// Tone tells the renderer how a message should look
type Tone int

const (
	ToneInfo Tone = iota
	ToneSuccess
	ToneDenied
	ToneDanger
)

// Message is one line of turn feedback, identified by its catalog message ID
type Message struct {
	ID   string
	Tone Tone
}

// Game is the whole state of one adventure. Nothing outside it is mutated
// during play, so tests can build and inspect a Game directly.
type Game struct {
	SessionID uuid.UUID

	Grid       *world.Grid
	Adventurer *Adventurer

	// Adventurer position on the grid
	Row int
	Col int

	// Any of these ends the game
	ChestOpen  bool
	PlayerQuit bool
	Alive      bool

	// LastDirection is the move that would lead back to the previous room,
	// ActionNone until the first successful move
	LastDirection input.Action

	Messages []Message

	Turns int // commands processed
}

// NewGame creates a game with an empty inventory and a living adventurer.
// The world itself is built by gameplay.BuildGame.
func NewGame() *Game {
	return &Game{
		SessionID:     uuid.New(),
		Adventurer:    NewAdventurer(),
		Alive:         true,
		LastDirection: input.ActionNone,
		Messages:      make([]Message, 0),
	}
}

// CurrentRoom returns the room the adventurer is standing in
func (g *Game) CurrentRoom() *world.Room {
	if g.Grid == nil {
		return nil
	}
	return g.Grid.GetRoom(g.Row, g.Col)
}

// MoveTo places the adventurer at (row, col). Returns false, leaving the
// position unchanged, if the position is off the grid or holds no room.
func (g *Game) MoveTo(row, col int) bool {
	if g.Grid == nil || g.Grid.GetRoom(row, col) == nil {
		return false
	}
	g.Row = row
	g.Col = col
	return true
}

// CanSee returns true if the current room is lit or the adventurer carries the lamp
func (g *Game) CanSee() bool {
	r := g.CurrentRoom()
	return g.Adventurer.HasLamp() || (r != nil && r.IsLit())
}

// IsGameOver returns true once the chest is open, the player quit or the adventurer died
func (g *Game) IsGameOver() bool {
	return g.ChestOpen || g.PlayerQuit || !g.Alive
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(id string, tone Tone) {
	const maxMessages = 5
	g.Messages = append(g.Messages, Message{ID: id, Tone: tone})

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// DrainMessages returns the pending messages and clears the log
func (g *Game) DrainMessages() []Message {
	msgs := g.Messages
	g.Messages = make([]Message, 0)
	return msgs
}
