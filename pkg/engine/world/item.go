package world

import (
	"github.com/zyedidia/generic/mapset"
)

// Item is something the adventurer can pick up
type Item int

const (
	Lamp Item = iota
	Key
)

func (i Item) String() string {
	switch i {
	case Lamp:
		return "lamp"
	case Key:
		return "key"
	default:
		return "unknown"
	}
}

// ItemSet is a set of items, used both for a room's floor and the adventurer's pack
type ItemSet = mapset.Set[Item]

// NewItemSet returns a set holding the given items
func NewItemSet(items ...Item) ItemSet {
	set := mapset.New[Item]()
	for _, item := range items {
		set.Put(item)
	}
	return set
}
