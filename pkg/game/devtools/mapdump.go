// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"adventure/pkg/engine/world"
	"adventure/pkg/game/state"
)

var ErrNoGrid = errors.New("no grid")

// roomSymbol returns the single-character symbol for a room (no adventurer overlay)
func roomSymbol(r *world.Room) rune {
	switch {
	case r == nil:
		return ' '
	case r.HasChest():
		return 'C'
	case r.ItemCount() > 0:
		return 'i'
	case !r.IsLit():
		return '#'
	default:
		return '.'
	}
}

// writeMapGrid writes the grid with the adventurer overlay
func writeMapGrid(b *strings.Builder, g *state.Game) {
	for row := 0; row < g.Grid.Rows(); row++ {
		for col := 0; col < g.Grid.Cols(); col++ {
			if row == g.Row && col == g.Col {
				b.WriteRune('@')
				continue
			}
			b.WriteRune(roomSymbol(g.Grid.GetRoom(row, col)))
		}
		b.WriteString("\n")
	}
}

// DumpMap writes a debug dump of the whole game to w: the map, every room,
// the adventurer and the game flags.
func DumpMap(g *state.Game, w io.Writer) error {
	if g.Grid == nil {
		return ErrNoGrid
	}

	b := &strings.Builder{}

	fmt.Fprintln(b, "=== MAP DUMP ===")
	fmt.Fprintln(b, "")
	fmt.Fprintln(b, "--- Legend ---")
	fmt.Fprintln(b, "@ = adventurer  C = chest  i = items on floor  # = dark  . = empty")
	fmt.Fprintln(b, "")

	fmt.Fprintln(b, "--- Map ---")
	writeMapGrid(b, g)
	fmt.Fprintln(b, "")

	fmt.Fprintln(b, "--- Rooms ---")
	g.Grid.ForEachRoom(func(_, _ int, r *world.Room) {
		exits := make([]string, 0, 4)
		for _, dir := range world.Directions() {
			if r.HasExit(dir) {
				exits = append(exits, dir.String())
			}
		}
		fmt.Fprintf(b, "  row: %d col: %d exits: %s %s\n", r.Row, r.Col, strings.Join(exits, ","), r)
	})
	fmt.Fprintln(b, "")

	fmt.Fprintln(b, "--- Adventurer ---")
	fmt.Fprintf(b, "  row: %d col: %d %s\n", g.Row, g.Col, g.Adventurer)
	fmt.Fprintln(b, "")

	fmt.Fprintln(b, "--- Flags ---")
	fmt.Fprintf(b, "  session: %s\n", g.SessionID)
	fmt.Fprintf(b, "  chest_open: %v\n", g.ChestOpen)
	fmt.Fprintf(b, "  player_quit: %v\n", g.PlayerQuit)
	fmt.Fprintf(b, "  alive: %v\n", g.Alive)
	fmt.Fprintf(b, "  last_direction: %s\n", g.LastDirection)
	fmt.Fprintf(b, "  turns: %d\n", g.Turns)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("cannot write map dump: %w", err)
	}
	return nil
}
