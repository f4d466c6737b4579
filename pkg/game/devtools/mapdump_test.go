package devtools

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adventure/pkg/engine/world"
	"adventure/pkg/game/gameplay"
	"adventure/pkg/game/state"
)

func TestDumpMap_NewGame(t *testing.T) {
	g := gameplay.BuildGame()
	var buf bytes.Buffer

	require.NoError(t, DumpMap(g, &buf))

	out := buf.String()
	assert.Contains(t, out, "--- Map ---\ni#\n@#\n")
	assert.Contains(t, out, "Room[isLit=true, hasLamp=true, hasKey=true, hasChest=false")
	assert.Contains(t, out, "row: 1 col: 0 exits: north,east")
	assert.Contains(t, out, "Adventurer[hasLamp=false, hasKey=false]")
	assert.Contains(t, out, "alive: true")
	assert.Contains(t, out, "last_direction: None")
}

func TestDumpMap_AfterMoving(t *testing.T) {
	g := gameplay.BuildGame()
	gameplay.Move(g, world.North)

	var buf bytes.Buffer
	require.NoError(t, DumpMap(g, &buf))

	// Room 3 shows its chest once the adventurer has left
	assert.Contains(t, buf.String(), "--- Map ---\n@#\nC#\n")
	assert.Contains(t, buf.String(), "last_direction: Move South")
}

func TestDumpMap_NoGrid(t *testing.T) {
	var buf bytes.Buffer
	err := DumpMap(state.NewGame(), &buf)
	assert.ErrorIs(t, err, ErrNoGrid)
	assert.Empty(t, buf.String())
}
