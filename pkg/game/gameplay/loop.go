package gameplay

import (
	"fmt"
	"log/slog"

	"adventure/pkg/engine/input"
	"adventure/pkg/game/locale"
	"adventure/pkg/game/renderer"
	"adventure/pkg/game/state"
)

// Run plays the game to the end: welcome screen, turns until the game is
// over, then the game over screen. If the input runs dry first the loop stops
// and the error wraps input.ErrEndOfInput.
func Run(g *state.Game, r renderer.Renderer, log *slog.Logger) error {
	r.ShowBanner(locale.MsgWelcome)

	err := play(g, r, log)

	r.ShowBanner(locale.MsgGameOver)
	log.Info("game over", "outcome", GameOutcome(g), "turns", g.Turns)

	return err
}

func play(g *state.Game, r renderer.Renderer, log *slog.Logger) error {
	for !g.IsGameOver() {
		r.ShowScene(g)

		intent, err := readIntent(r, log)
		if err != nil {
			return fmt.Errorf("turn %d: %w", g.Turns+1, err)
		}

		log.Debug("turn", "action", intent.Action, "row", g.Row, "col", g.Col, "last_direction", g.LastDirection)
		ProcessIntent(g, intent)

		for _, msg := range g.DrainMessages() {
			r.ShowMessage(msg)
		}
	}
	return nil
}

// readIntent prompts until the player enters a valid command
func readIntent(r renderer.Renderer, log *slog.Logger) (input.Intent, error) {
	for {
		r.ShowMenu()

		intent, err := r.GetInput()
		if err != nil {
			return intent, err
		}
		if intent.Valid() {
			return intent, nil
		}

		log.Debug("invalid input", "raw", intent.Raw)
		r.ShowMessage(state.Message{ID: locale.MsgInvalidInput, Tone: state.ToneDenied})
	}
}
