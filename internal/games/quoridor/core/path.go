package core

import "github.com/zyedidia/generic/mapset"

// Board is the read-only view path search needs. *Grid implements it.
type Board interface {
	IsWithinBounds(c Coord) bool
	CanStep(from Coord, d Dir) bool
}

// PathExists reports whether any tile satisfying goal is reachable from
// start. Only walls block movement; pawns never do. The search stops at the
// first goal tile found.
func PathExists(b Board, start Coord, goal Goal) bool {
	_, found := search(b, start, goal, false)
	return found
}

// FindPath returns a shortest path from start to a goal tile, start and
// goal inclusive, or nil if none exists. When start already satisfies the
// goal the path is [start]. Among equally short paths the one returned is
// whichever breadth-first exploration (Up, Right, Down, Left) reaches first.
func FindPath(b Board, start Coord, goal Goal) []Coord {
	path, _ := search(b, start, goal, true)
	return path
}

// ShortestDistance returns the number of steps on a shortest path to the
// goal. The second result is false when the goal is unreachable.
func ShortestDistance(b Board, start Coord, goal Goal) (int, bool) {
	path, found := search(b, start, goal, true)
	if !found {
		return 0, false
	}
	return len(path) - 1, true
}

// search runs a breadth-first search. Each tile is visited at most once.
// With trace set, parents are recorded and the path is rebuilt.
func search(b Board, start Coord, goal Goal, trace bool) ([]Coord, bool) {
	if !b.IsWithinBounds(start) {
		return nil, false
	}
	if goal.Reached(start) {
		return []Coord{start}, true
	}

	visited := mapset.New[Coord]()
	visited.Put(start)
	var parents map[Coord]Coord
	if trace {
		parents = make(map[Coord]Coord)
	}

	queue := []Coord{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, d := range Dirs {
			if !b.CanStep(current, d) {
				continue
			}
			next := current.Step(d)
			if visited.Has(next) {
				continue
			}
			visited.Put(next)
			if trace {
				parents[next] = current
			}
			if goal.Reached(next) {
				if !trace {
					return nil, true
				}
				return rebuild(parents, start, next), true
			}
			queue = append(queue, next)
		}
	}
	return nil, false
}

// rebuild walks parent links back from end to start.
func rebuild(parents map[Coord]Coord, start, end Coord) []Coord {
	path := []Coord{end}
	for c := end; c != start; {
		c = parents[c]
		path = append(path, c)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
