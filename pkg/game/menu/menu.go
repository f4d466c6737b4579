// Package menu provides the command menu shown before every prompt.
package menu

import (
	"fmt"
	"strings"

	"adventure/pkg/engine/input"
	"adventure/pkg/game/locale"
)

// Separator goes between the items of one menu row
const Separator = " | "

// MenuItem is a single command in the menu
type MenuItem struct {
	Action input.Action
}

// GetLabel returns the translated display label, e.g. "GO NORTH"
func (m MenuItem) GetLabel(cat *locale.Catalog) string {
	return cat.Get(locale.MenuID(m.Action.String()))
}

// GetCode returns the key the player types for this command
func (m MenuItem) GetCode() string {
	return m.Action.Code()
}

// CommandMenu is the fixed menu of the eight commands in two rows
type CommandMenu struct {
	rows [][]MenuItem
}

// NewCommandMenu creates the menu with movement on the left and actions on the right
func NewCommandMenu() *CommandMenu {
	row := func(actions ...input.Action) []MenuItem {
		items := make([]MenuItem, 0, len(actions))
		for _, a := range actions {
			items = append(items, MenuItem{Action: a})
		}
		return items
	}

	return &CommandMenu{
		rows: [][]MenuItem{
			row(input.ActionMoveNorth, input.ActionMoveEast, input.ActionGetLamp, input.ActionOpenChest),
			row(input.ActionMoveSouth, input.ActionMoveWest, input.ActionGetKey, input.ActionQuit),
		},
	}
}

// Rows returns the menu layout
func (m *CommandMenu) Rows() [][]MenuItem {
	return m.rows
}

// Items returns every menu item, row by row
func (m *CommandMenu) Items() []MenuItem {
	var items []MenuItem
	for _, r := range m.rows {
		items = append(items, r...)
	}
	return items
}

// Lines formats each row as "LABEL [CODE] | LABEL [CODE] ...".
// styleCode may decorate the bracketed code, nil leaves it plain.
func (m *CommandMenu) Lines(cat *locale.Catalog, styleCode func(string) string) []string {
	if styleCode == nil {
		styleCode = func(s string) string { return s }
	}

	lines := make([]string, 0, len(m.rows))
	for _, r := range m.rows {
		parts := make([]string, 0, len(r))
		for _, item := range r {
			parts = append(parts, fmt.Sprintf("%s [%s]", item.GetLabel(cat), styleCode(item.GetCode())))
		}
		lines = append(lines, strings.Join(parts, Separator))
	}
	return lines
}
