// Package world provides the grid-of-rooms primitives the game is played on.
package world

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Room is a single cell of the grid.
// Exits are fixed once the world is built; only the floor items change during play.
type Room struct {
	// Grid position, set by Grid.Place
	Row int
	Col int

	description string
	lit         bool
	chest       bool

	exits mapset.Set[Direction]
	items ItemSet
}

// NewRoom creates a dark, empty room with no exits
func NewRoom(description string) *Room {
	return &Room{
		description: description,
		exits:       mapset.New[Direction](),
		items:       NewItemSet(),
	}
}

// IsLit returns true if the room can be seen without a lamp
func (r *Room) IsLit() bool {
	return r.lit
}

func (r *Room) SetLit(b bool) {
	r.lit = b
}

// HasChest returns true if the treasure chest is in this room
func (r *Room) HasChest() bool {
	return r.chest
}

func (r *Room) SetChest(b bool) {
	r.chest = b
}

func (r *Room) HasLamp() bool {
	return r.HasItem(Lamp)
}

func (r *Room) SetLamp(b bool) {
	r.setItem(Lamp, b)
}

func (r *Room) HasKey() bool {
	return r.HasItem(Key)
}

func (r *Room) SetKey(b bool) {
	r.setItem(Key, b)
}

func (r *Room) HasNorth() bool {
	return r.HasExit(North)
}

func (r *Room) SetNorth(b bool) {
	r.SetExit(North, b)
}

func (r *Room) HasSouth() bool {
	return r.HasExit(South)
}

func (r *Room) SetSouth(b bool) {
	r.SetExit(South, b)
}

func (r *Room) HasEast() bool {
	return r.HasExit(East)
}

func (r *Room) SetEast(b bool) {
	r.SetExit(East, b)
}

func (r *Room) HasWest() bool {
	return r.HasExit(West)
}

func (r *Room) SetWest(b bool) {
	r.SetExit(West, b)
}

func (r *Room) Description() string {
	return r.description
}

// SetDescription replaces the room's description. Empty descriptions are allowed.
func (r *Room) SetDescription(d string) { r.description = d }

// HasExit returns true if the room can be left in the given direction
func (r *Room) HasExit(dir Direction) bool {
	return r.exits.Has(dir)
}

// SetExit opens or closes the exit in the given direction
func (r *Room) SetExit(dir Direction, open bool) {
	if !dir.IsValid() {
		return
	}
	if open {
		r.exits.Put(dir)
	} else {
		r.exits.Remove(dir)
	}
}

// Exits returns the room's open exits in display order
func (r *Room) Exits() []Direction {
	var exits []Direction
	for _, dir := range Directions() {
		if r.HasExit(dir) {
			exits = append(exits, dir)
		}
	}
	return exits
}

// HasItem returns true if the item is lying on the room's floor
func (r *Room) HasItem(item Item) bool {
	return r.items.Has(item)
}

// PutItem drops an item on the floor
func (r *Room) PutItem(item Item) {
	r.items.Put(item)
}

// RemoveItem takes an item off the floor, returning false if it was not there
func (r *Room) RemoveItem(item Item) bool {
	if !r.items.Has(item) {
		return false
	}
	r.items.Remove(item)
	return true
}

// ItemCount returns how many items are on the floor
func (r *Room) ItemCount() int {
	return r.items.Size()
}

func (r *Room) setItem(item Item, present bool) {
	if present {
		r.PutItem(item)
	} else {
		r.RemoveItem(item)
	}
}

// String lists every field, in the order lit, lamp, key, chest, exits, description
func (r *Room) String() string {
	return fmt.Sprintf("Room[isLit=%t, hasLamp=%t, hasKey=%t, hasChest=%t, hasNorth=%t, hasSouth=%t, hasEast=%t, hasWest=%t, description=%s]",
		r.lit, r.HasLamp(), r.HasKey(), r.chest,
		r.HasNorth(), r.HasSouth(), r.HasEast(), r.HasWest(),
		r.description)
}
