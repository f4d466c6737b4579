package gameplay

import (
	"errors"

	"github.com/zyedidia/generic/mapset"

	"adventure/pkg/engine/world"
)

var (
	ErrLampUnreachable  = errors.New("lamp cannot be reached through lit rooms")
	ErrKeyUnreachable   = errors.New("key cannot be reached")
	ErrChestUnreachable = errors.New("chest cannot be reached")
)

type position struct {
	row, col int
}

// reachableRooms returns every room reachable from (row, col) by BFS over exits,
// entering only rooms for which passable returns true
func reachableRooms(grid *world.Grid, row, col int, passable func(r *world.Room) bool) mapset.Set[position] {
	reachable := mapset.New[position]()
	queue := []position{{row, col}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		r := grid.GetRoom(current.row, current.col)
		if r == nil || !passable(r) || reachable.Has(current) {
			continue
		}

		reachable.Put(current)

		for _, dir := range world.Directions() {
			if !r.HasExit(dir) {
				continue
			}
			dr, dc := dir.Delta()
			next := position{current.row + dr, current.col + dc}
			if !reachable.Has(next) {
				queue = append(queue, next)
			}
		}
	}

	return reachable
}

// CheckSolvable verifies the game can be won from (row, col). Without the lamp
// only lit rooms are safe, so the lamp has to lie in a lit room reachable
// through lit rooms. With the lamp, key and chest only need to be reachable.
func CheckSolvable(grid *world.Grid, row, col int) error {
	lit := reachableRooms(grid, row, col, (*world.Room).IsLit)
	all := reachableRooms(grid, row, col, func(*world.Room) bool { return true })

	find := func(rooms mapset.Set[position], want func(r *world.Room) bool) bool {
		found := false
		rooms.Each(func(p position) {
			if want(grid.GetRoom(p.row, p.col)) {
				found = true
			}
		})
		return found
	}

	if !find(lit, (*world.Room).HasLamp) {
		return ErrLampUnreachable
	}
	if !find(all, (*world.Room).HasKey) {
		return ErrKeyUnreachable
	}
	if !find(all, (*world.Room).HasChest) {
		return ErrChestUnreachable
	}
	return nil
}
