package tui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adventure/pkg/engine/config"
	"adventure/pkg/engine/input"
	"adventure/pkg/engine/world"
	"adventure/pkg/game/locale"
	"adventure/pkg/game/renderer"
	"adventure/pkg/game/state"
)

func newTestRenderer(t *testing.T, in string, opts Options) (*TUIRenderer, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	return New(strings.NewReader(in), out, locale.Default(), opts), out
}

func roomGame(lit bool) *state.Game {
	g := state.NewGame()
	g.Grid = world.NewGrid(1, 1)
	r := world.NewRoom("Room 3")
	r.SetLit(lit)
	g.Grid.Place(0, 0, r)
	return g
}

func TestShowScene(t *testing.T) {
	t.Run("lit room", func(t *testing.T) {
		r, out := newTestRenderer(t, "", Options{Color: config.ColorNever})
		r.ShowScene(roomGame(true))
		assert.Equal(t, "Room 3\n", out.String())
	})

	t.Run("dark room", func(t *testing.T) {
		r, out := newTestRenderer(t, "", Options{Color: config.ColorNever})
		r.ShowScene(roomGame(false))
		assert.Equal(t, "This room is pitch black!\n", out.String())
	})

	t.Run("dark room with lamp", func(t *testing.T) {
		r, out := newTestRenderer(t, "", Options{Color: config.ColorNever})
		g := roomGame(false)
		g.Adventurer.SetLamp(true)
		r.ShowScene(g)
		assert.Equal(t, "Room 3\n", out.String())
	})
}

func TestShowMenu(t *testing.T) {
	r, out := newTestRenderer(t, "", Options{Color: config.ColorNever})
	r.ShowMenu()

	want := "GO NORTH [W] | GO EAST [D] | GET LAMP [L] | OPEN CHEST [O]\n" +
		"GO SOUTH [S] | GO WEST [A] | GET KEY [K] | QUIT [Q]\n" +
		Prompt
	assert.Equal(t, want, out.String())
}

func TestShowMessage_Bell(t *testing.T) {
	tests := []struct {
		name string
		bell bool
		id   string
		want string
	}{
		{"bell on blocked move", true, locale.CannotGoID("north"), "You cannot go north!\a\n"},
		{"bell off", false, locale.CannotGoID("north"), "You cannot go north!\n"},
		{"no bell for other messages", true, locale.MsgNoLamp, "There is no lamp in this room.\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, out := newTestRenderer(t, "", Options{Color: config.ColorNever, Bell: tt.bell})
			r.ShowMessage(state.Message{ID: tt.id, Tone: state.ToneDenied})
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestStyleText(t *testing.T) {
	plain, _ := newTestRenderer(t, "", Options{Color: config.ColorNever})
	assert.Equal(t, "Room 1", plain.StyleText("Room 1", renderer.StyleRoom))

	// Buffers are never terminals
	auto, _ := newTestRenderer(t, "", Options{Color: config.ColorAuto})
	assert.Equal(t, "Room 1", auto.StyleText("Room 1", renderer.StyleRoom))

	colored, _ := newTestRenderer(t, "", Options{Color: config.ColorAlways})
	got := colored.StyleText("Room 1", renderer.StyleRoom)
	assert.NotEqual(t, "Room 1", got)
	assert.Contains(t, got, "\x1b[")
	assert.Equal(t, "Room 1", color.ClearCode(got))
	assert.Equal(t, "Room 1", colored.StyleText("Room 1", renderer.StyleNormal))
}

func TestShowBanner_Translated(t *testing.T) {
	cat, err := locale.Load("de")
	require.NoError(t, err)
	out := &bytes.Buffer{}
	r := New(strings.NewReader(""), out, cat, Options{Color: config.ColorNever})

	r.ShowBanner(locale.MsgGameOver)

	assert.Equal(t, "\n"+cat.Get(locale.MsgGameOver)+"\n\n", out.String())
}

func TestWrap(t *testing.T) {
	r, out := newTestRenderer(t, "", Options{Color: config.ColorNever, Width: 12})
	r.ShowMessage(state.Message{ID: locale.MsgGrue, Tone: state.ToneDanger})

	for _, line := range strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n") {
		assert.LessOrEqual(t, len(line), 12, line)
	}
	assert.Equal(t, "You got eaten alive by the Grue!", strings.Join(strings.Fields(out.String()), " "))
}

func TestGetInput(t *testing.T) {
	r, _ := newTestRenderer(t, "w\nX\n", Options{})

	intent, err := r.GetInput()
	require.NoError(t, err)
	assert.Equal(t, input.ActionMoveNorth, intent.Action)

	intent, err = r.GetInput()
	require.NoError(t, err)
	assert.False(t, intent.Valid())
	assert.Equal(t, "X", intent.Raw)

	_, err = r.GetInput()
	assert.ErrorIs(t, err, input.ErrEndOfInput)
}

type failingWriter struct{}

var errDiskFull = errors.New("disk full")

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errDiskFull
}

func TestGetInput_ReportsWriteFailure(t *testing.T) {
	r := New(strings.NewReader("W\n"), failingWriter{}, locale.Default(), Options{})
	r.ShowMenu()

	_, err := r.GetInput()
	assert.ErrorIs(t, err, errDiskFull)
}
