package engine

import "github.com/mireval/rampart/internal/models"

// PathFinder computes the route a mobile unit takes to the opposing edge.
// The route is finite and ordered from the spawn cell to the edge cell;
// an empty route means the edge is unreachable.
type PathFinder interface {
	PathToEdge(start models.Coordinate, blocked func(models.Coordinate) bool) []models.Coordinate
}

// bfsPather is a minimal stand-in for the engine-side pathfinder: a shortest
// 4-connected route to the target edge, ignoring unit pathing preferences.
type bfsPather struct{}

// NewPathFinder returns the default breadth-first path service.
func NewPathFinder() PathFinder {
	return bfsPather{}
}

// targetEdge returns the edge cells a unit spawned at start routes toward.
// Units spawned on the bottom-left edge cross to the top-right edge and
// vice versa.
func targetEdge(start models.Coordinate) map[models.Coordinate]bool {
	edge := make(map[models.Coordinate]bool, models.HalfBoard)
	topRight := start.X+start.Y == models.HalfBoard-1
	for i := 0; i < models.HalfBoard; i++ {
		var c models.Coordinate
		if topRight {
			c = models.Coordinate{X: models.HalfBoard + i, Y: models.BoardSize - 1 - i}
		} else {
			c = models.Coordinate{X: i, Y: models.HalfBoard + i}
		}
		edge[c] = true
	}
	return edge
}

func (bfsPather) PathToEdge(start models.Coordinate, blocked func(models.Coordinate) bool) []models.Coordinate {
	if !start.InArena() || (blocked != nil && blocked(start)) {
		return nil
	}

	goal := targetEdge(start)
	if goal[start] {
		return []models.Coordinate{start}
	}

	prev := map[models.Coordinate]models.Coordinate{start: start}
	queue := []models.Coordinate{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, d := range [4]models.Coordinate{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: -1, Y: 0}} {
			next := models.Coordinate{X: cur.X + d.X, Y: cur.Y + d.Y}
			if !next.InArena() {
				continue
			}
			if _, seen := prev[next]; seen {
				continue
			}
			if blocked != nil && blocked(next) {
				continue
			}
			prev[next] = cur
			if goal[next] {
				return reconstruct(prev, start, next)
			}
			queue = append(queue, next)
		}
	}
	return nil
}

func reconstruct(prev map[models.Coordinate]models.Coordinate, start, end models.Coordinate) []models.Coordinate {
	var path []models.Coordinate
	for c := end; ; c = prev[c] {
		path = append(path, c)
		if c == start {
			break
		}
	}
	// Reverse into spawn-to-edge order
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
