package gameplay

import (
	"adventure/pkg/engine/input"
	"adventure/pkg/engine/world"
	"adventure/pkg/game/locale"
	"adventure/pkg/game/state"
)

// ProcessIntent applies one command to the game. Invalid intents are ignored.
func ProcessIntent(g *state.Game, intent input.Intent) {
	if !intent.Valid() {
		return
	}
	g.Turns++

	if EatenByGrue(g, intent.Action) {
		g.Alive = false
		g.AddMessage(locale.MsgGrue, state.ToneDanger)
		return
	}

	switch intent.Action {
	case input.ActionMoveNorth, input.ActionMoveSouth, input.ActionMoveEast, input.ActionMoveWest:
		dir, _ := intent.Action.Direction()
		Move(g, dir)

	case input.ActionGetLamp:
		PickUp(g, world.Lamp)

	case input.ActionGetKey:
		PickUp(g, world.Key)

	case input.ActionOpenChest:
		OpenChest(g)

	case input.ActionQuit:
		Quit(g)
	}
}
