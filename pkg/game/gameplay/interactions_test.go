package gameplay

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"adventure/pkg/engine/world"
	"adventure/pkg/game/locale"
	"adventure/pkg/game/state"
)

func TestPickUp(t *testing.T) {
	tests := []struct {
		item       world.Item
		gotID      string
		missingID  string
		hasOnFloor func(r *world.Room) bool
		carried    func(g *state.Game) bool
	}{
		{world.Lamp, locale.MsgGotLamp, locale.MsgNoLamp, (*world.Room).HasLamp, func(g *state.Game) bool { return g.Adventurer.HasLamp() }},
		{world.Key, locale.MsgGotKey, locale.MsgNoKey, (*world.Room).HasKey, func(g *state.Game) bool { return g.Adventurer.HasKey() }},
	}
	for _, tt := range tests {
		t.Run(tt.item.String(), func(t *testing.T) {
			g := gameAt(t, 0, 0)

			assert.True(t, PickUp(g, tt.item))
			assert.True(t, tt.carried(g))
			assert.False(t, tt.hasOnFloor(g.CurrentRoom()))
			assert.Equal(t, []state.Message{{ID: tt.gotID, Tone: state.ToneSuccess}}, g.DrainMessages())

			// Second attempt finds nothing but keeps the item
			assert.False(t, PickUp(g, tt.item))
			assert.True(t, tt.carried(g))
			assert.Equal(t, []state.Message{{ID: tt.missingID, Tone: state.ToneDenied}}, g.DrainMessages())
		})
	}
}

func TestPickUp_NothingHere(t *testing.T) {
	g := gameAt(t, 1, 1)

	assert.False(t, PickUp(g, world.Key))
	assert.False(t, g.Adventurer.HasKey())
	assert.Equal(t, locale.MsgNoKey, g.Messages[0].ID)
}

func TestOpenChest(t *testing.T) {
	t.Run("without key", func(t *testing.T) {
		g := gameAt(t, 1, 0)
		assert.False(t, OpenChest(g))
		assert.False(t, g.ChestOpen)
		assert.False(t, g.IsGameOver())
		assert.Equal(t, locale.MsgMissingKey, g.Messages[0].ID)
	})

	t.Run("no chest here", func(t *testing.T) {
		g := gameAt(t, 0, 0)
		g.Adventurer.SetKey(true)
		assert.False(t, OpenChest(g))
		assert.False(t, g.ChestOpen)
		assert.Equal(t, locale.MsgNoChest, g.Messages[0].ID)
	})

	t.Run("with key", func(t *testing.T) {
		g := gameAt(t, 1, 0)
		g.Adventurer.SetKey(true)
		assert.True(t, OpenChest(g))
		assert.True(t, g.ChestOpen)
		assert.True(t, g.IsGameOver())
		assert.Equal(t, []state.Message{{ID: locale.MsgGotTreasure, Tone: state.ToneSuccess}}, g.Messages)
	})
}

func TestQuit(t *testing.T) {
	g := BuildGame()
	Quit(g)
	assert.True(t, g.PlayerQuit)
	assert.True(t, g.IsGameOver())
	assert.Equal(t, OutcomeQuit, GameOutcome(g))
	assert.Equal(t, locale.MsgQuit, g.Messages[0].ID)
}
