package renderer

import (
	"adventure/pkg/engine/input"
	"adventure/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleRoom
	StyleDark
	StyleItem
	StyleActionShort
	StyleDenied
	StyleDanger
	StyleSuccess
	StyleSubtle
	StyleBanner
)

// ToneStyle returns the style a message of the given tone is rendered in
func ToneStyle(t state.Tone) TextStyle {
	switch t {
	case state.ToneSuccess:
		return StyleSuccess
	case state.ToneDenied:
		return StyleDenied
	case state.ToneDanger:
		return StyleDanger
	default:
		return StyleNormal
	}
}

// Renderer is the console port the game loop talks to.
// Implementations own both the output and the input side.
type Renderer interface {
	// ShowBanner prints a start or end screen message
	ShowBanner(id string)

	// ShowScene describes the adventurer's current room, or its darkness
	ShowScene(g *state.Game)

	// ShowMenu lists the commands and prompts for input
	ShowMenu()

	// ShowMessage prints one line of turn feedback
	ShowMessage(msg state.Message)

	// GetInput blocks for one line of input.
	// Returns input.ErrEndOfInput once the input source is exhausted.
	GetInput() (input.Intent, error)
}
