package gameplay

import (
	"adventure/pkg/engine/input"
	"adventure/pkg/engine/world"
	"adventure/pkg/game/locale"
	"adventure/pkg/game/state"
)

// Move walks the adventurer one room in dir if the current room has that exit.
// A successful move remembers the way back in LastDirection.
func Move(g *state.Game, dir world.Direction) bool {
	r := g.CurrentRoom()
	if r == nil || !dir.IsValid() {
		return false
	}

	if !r.HasExit(dir) {
		g.AddMessage(locale.CannotGoID(dir.String()), state.ToneDenied)
		return false
	}

	rowDelta, colDelta := dir.Delta()
	if !g.MoveTo(g.Row+rowDelta, g.Col+colDelta) {
		// Exit leads off the grid
		g.AddMessage(locale.CannotGoID(dir.String()), state.ToneDenied)
		return false
	}

	g.LastDirection = input.MoveAction(dir.Opposite())
	return true
}
