package gameplay

import (
	"adventure/pkg/engine/world"
	"adventure/pkg/game/locale"
	"adventure/pkg/game/state"
)

var pickupMessages = map[world.Item]struct {
	got     string
	missing string
}{
	world.Lamp: {got: locale.MsgGotLamp, missing: locale.MsgNoLamp},
	world.Key:  {got: locale.MsgGotKey, missing: locale.MsgNoKey},
}

// PickUp moves an item from the room's floor into the adventurer's inventory
func PickUp(g *state.Game, item world.Item) bool {
	r := g.CurrentRoom()
	if r == nil {
		return false
	}
	msgs := pickupMessages[item]

	if !r.RemoveItem(item) {
		g.AddMessage(msgs.missing, state.ToneDenied)
		return false
	}

	g.Adventurer.PickUpItem(item)
	g.AddMessage(msgs.got, state.ToneSuccess)
	return true
}

// OpenChest opens the chest in the current room if the adventurer has the key.
// This is the only way to win.
func OpenChest(g *state.Game) bool {
	r := g.CurrentRoom()
	if r == nil || !r.HasChest() {
		g.AddMessage(locale.MsgNoChest, state.ToneDenied)
		return false
	}

	if !g.Adventurer.HasKey() {
		g.AddMessage(locale.MsgMissingKey, state.ToneDenied)
		return false
	}

	g.ChestOpen = true
	g.AddMessage(locale.MsgGotTreasure, state.ToneSuccess)
	return true
}

// Quit ends the game at the player's request
func Quit(g *state.Game) {
	g.PlayerQuit = true
	g.AddMessage(locale.MsgQuit, state.ToneInfo)
}
