// Package tui renders the adventure as plain lines on a console.
package tui

import (
	"fmt"
	"io"

	"github.com/gookit/color"
	"github.com/muesli/reflow/wordwrap"

	"adventure/pkg/engine/config"
	"adventure/pkg/engine/input"
	"adventure/pkg/engine/terminal"
	"adventure/pkg/game/locale"
	"adventure/pkg/game/menu"
	"adventure/pkg/game/renderer"
	"adventure/pkg/game/state"
)

const (
	Prompt = "> "
	bell   = "\a"
)

// Options control presentation only; they never change game behavior
type Options struct {
	Color config.ColorMode
	Bell  bool
	Width int // 0 means the terminal width
}

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out     io.Writer
	in      *input.LineReader
	catalog *locale.Catalog
	menu    *menu.CommandMenu

	colors bool
	bell   bool
	width  int

	colorRoom        color.Style
	colorDark        color.Style
	colorItem        color.Style
	colorActionShort color.Style
	colorDenied      color.Style
	colorDanger      color.Style
	colorSuccess     color.Style
	colorSubtle      color.Style
	colorBanner      color.Style

	err error // first write failure
}

// New creates a TUI renderer reading commands from in and writing to out
func New(in io.Reader, out io.Writer, cat *locale.Catalog, opts Options) *TUIRenderer {
	t := &TUIRenderer{
		out:     out,
		in:      input.NewLineReader(in),
		catalog: cat,
		menu:    menu.NewCommandMenu(),
		bell:    opts.Bell,
		width:   opts.Width,
	}

	switch opts.Color {
	case config.ColorAlways:
		t.colors = true
	case config.ColorAuto:
		t.colors = terminal.IsTerminal(out) && color.SupportColor()
	}

	if t.width <= 0 {
		t.width = terminal.GetWidth(out)
	}

	t.Init()
	return t
}

// Init initializes the colors
func (t *TUIRenderer) Init() {
	t.colorRoom = color.Style{color.FgCyan, color.OpBold}
	t.colorDark = color.Style{color.FgGray}
	t.colorItem = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorDanger = color.Style{color.FgLightRed, color.OpBold}
	t.colorSuccess = color.Style{color.FgGreen, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorBanner = color.Style{color.FgYellow, color.OpBold}
}

// StyleText applies a style to text. Without colors the text comes back unchanged.
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	if !t.colors {
		return text
	}

	var s color.Style
	switch style {
	case renderer.StyleRoom:
		s = t.colorRoom
	case renderer.StyleDark:
		s = t.colorDark
	case renderer.StyleItem:
		s = t.colorItem
	case renderer.StyleActionShort:
		s = t.colorActionShort
	case renderer.StyleDenied:
		s = t.colorDenied
	case renderer.StyleDanger:
		s = t.colorDanger
	case renderer.StyleSuccess:
		s = t.colorSuccess
	case renderer.StyleSubtle:
		s = t.colorSubtle
	case renderer.StyleBanner:
		s = t.colorBanner
	default:
		return text
	}

	// Rendered directly so a forced color mode does not depend on gookit's own detection
	return fmt.Sprintf(color.FullColorTpl, s.String(), text)
}

// ShowBanner prints a start or end screen message
func (t *TUIRenderer) ShowBanner(id string) {
	t.printLine("")
	t.printLine(t.StyleText(t.catalog.Get(id), renderer.StyleBanner))
	t.printLine("")
}

// ShowScene describes the current room, or only its darkness
func (t *TUIRenderer) ShowScene(g *state.Game) {
	r := g.CurrentRoom()
	if r == nil {
		return
	}

	if !g.CanSee() {
		t.printLine(t.StyleText(t.catalog.Get(locale.MsgRoomDark), renderer.StyleDark))
		return
	}
	t.printLine(t.StyleText(r.Description(), renderer.StyleRoom))
}

// ShowMenu lists the commands and prompts for input
func (t *TUIRenderer) ShowMenu() {
	styleCode := func(code string) string {
		return t.StyleText(code, renderer.StyleActionShort)
	}
	for _, line := range t.menu.Lines(t.catalog, styleCode) {
		t.printLine(line)
	}
	t.print(Prompt)
}

// ShowMessage prints one line of turn feedback
func (t *TUIRenderer) ShowMessage(msg state.Message) {
	text := t.StyleText(t.catalog.Get(msg.ID), renderer.ToneStyle(msg.Tone))
	if t.bell && locale.IsCannotGo(msg.ID) {
		text += bell
	}
	t.printLine(text)
}

// GetInput reads one line and maps it to an intent.
// A failed earlier write is reported here, since the Show methods cannot return errors.
func (t *TUIRenderer) GetInput() (input.Intent, error) {
	if t.err != nil {
		return input.Intent{}, fmt.Errorf("cannot write output: %w", t.err)
	}

	line, err := t.in.ReadLine()
	if err != nil {
		return input.Intent{}, err
	}
	return input.MapToIntent(line), nil
}

func (t *TUIRenderer) printLine(s string) {
	t.print(wordwrap.String(s, t.width) + "\n")
}

func (t *TUIRenderer) print(s string) {
	if t.err != nil {
		return
	}
	if _, err := io.WriteString(t.out, s); err != nil {
		t.err = err
	}
}
