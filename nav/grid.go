// Package nav builds a walkability grid over the level's solids and finds
// platformer-aware paths across it with A*.
package nav

import (
	"math"

	astar "github.com/beefsack/go-astar"
	"github.com/solarlune/resolv"

	cfg "github.com/automoto/adrenaline-rush/config"
	"github.com/automoto/adrenaline-rush/tags"
)

// Point is a world position in pixels.
type Point struct {
	X, Y float64
}

// Grid represents the walkable areas of the level
type Grid struct {
	Width, Height int
	CellSize      float64
	Nodes         [][]*Node
}

// Node represents a single cell in the navigation grid.
// Implements astar.Pather.
type Node struct {
	X, Y     int
	Walkable bool
	grid     *Grid
}

var stepDirs = []struct{ dx, dy int }{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

// PathNeighbors returns adjacent walkable nodes plus jump landings.
func (n *Node) PathNeighbors() []astar.Pather {
	var neighbors []astar.Pather
	for _, d := range stepDirs {
		nx, ny := n.X+d.dx, n.Y+d.dy
		if !n.grid.inBounds(nx, ny) {
			continue
		}
		if neighbor := n.grid.Nodes[ny][nx]; neighbor.Walkable {
			neighbors = append(neighbors, neighbor)
		}
	}
	return append(neighbors, n.jumpTargets()...)
}

// PathNeighborCost returns the movement cost between nodes. Moving up costs
// more since it needs a jump.
func (n *Node) PathNeighborCost(to astar.Pather) float64 {
	t := to.(*Node)
	dx := float64(t.X - n.X)
	dy := float64(t.Y - n.Y)
	cost := math.Sqrt(dx*dx + dy*dy)
	if dy < 0 {
		cost *= 1.5
	}
	return cost
}

// PathEstimatedCost is the euclidean heuristic.
func (n *Node) PathEstimatedCost(to astar.Pather) float64 {
	t := to.(*Node)
	dx := float64(t.X - n.X)
	dy := float64(t.Y - n.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

func (n *Node) jumpTargets() []astar.Pather {
	var targets []astar.Pather
	g := n.grid
	heightCells := int(cfg.Pathfinding.MaxJumpHeight/g.CellSize) - 1
	distCells := int(cfg.Pathfinding.MaxJumpDistance/g.CellSize) - 1

	// Falls of up to two cells are allowed alongside jumps
	for dy := -heightCells; dy <= 2; dy++ {
		for dx := -distCells; dx <= distCells; dx++ {
			if absInt(dx) <= 1 && absInt(dy) <= 1 {
				continue
			}
			nx, ny := n.X+dx, n.Y+dy
			if !g.inBounds(nx, ny) || !g.jumpReachable(dx, dy) {
				continue
			}
			if t := g.Nodes[ny][nx]; t.Walkable && g.groundBelow(nx, ny) {
				targets = append(targets, t)
			}
		}
	}
	return targets
}

// jumpReachable checks a jump by (dx, dy) cells against the player's jump arc.
func (g *Grid) jumpReachable(dx, dy int) bool {
	jumpSpeed := cfg.Player.JumpSpeed
	gravity := cfg.Physics.Gravity
	runSpeed := cfg.Player.MoveSpeed
	if gravity <= 0 {
		return false
	}
	airTime := 2 * jumpSpeed / gravity

	horizontal := math.Abs(float64(dx)) * g.CellSize
	vertical := float64(dy) * g.CellSize

	if dy < 0 {
		height := -vertical
		if height > cfg.Pathfinding.MaxJumpHeight {
			return false
		}
		disc := jumpSpeed*jumpSpeed - 2*gravity*height
		if disc < 0 {
			return false
		}
		toHeight := (jumpSpeed - math.Sqrt(disc)) / gravity
		return horizontal <= runSpeed*(airTime-toHeight)
	}

	fall := airTime
	if dy > 0 {
		fall += math.Sqrt(2 * vertical / gravity)
	}
	return horizontal <= runSpeed*fall
}

func (g *Grid) groundBelow(x, y int) bool {
	if y+1 >= g.Height {
		return true
	}
	return !g.Nodes[y+1][x].Walkable
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Build samples every cell against the space's solids.
func Build(space *resolv.Space, levelWidth, levelHeight int, cellSize float64) *Grid {
	gw := int(float64(levelWidth) / cellSize)
	gh := int(float64(levelHeight) / cellSize)

	g := &Grid{
		Width:    gw,
		Height:   gh,
		CellSize: cellSize,
		Nodes:    make([][]*Node, gh),
	}
	for y := 0; y < gh; y++ {
		g.Nodes[y] = make([]*Node, gw)
		for x := 0; x < gw; x++ {
			g.Nodes[y][x] = &Node{X: x, Y: y, Walkable: true, grid: g}
		}
	}

	for y := 0; y < gh; y++ {
		for x := 0; x < gw; x++ {
			wx := float64(x) * cellSize
			wy := float64(y) * cellSize
			probe := resolv.NewObject(wx+2, wy+2, cellSize-4, cellSize-4)
			space.Add(probe)
			if probe.Check(0, 0, tags.ResolvSolid) != nil {
				g.Nodes[y][x].Walkable = false
			}
			space.Remove(probe)
		}
	}
	return g
}

// FindPath returns world waypoints (cell centers) from start to goal, start
// first. It returns nil when no path exists.
func (g *Grid) FindPath(start, goal Point) []Point {
	if g == nil || g.Width == 0 || g.Height == 0 {
		return nil
	}
	sx, sy := g.cellOf(start)
	gx, gy := g.cellOf(goal)

	from := g.Nodes[sy][sx]
	to := g.Nodes[gy][gx]
	if !from.Walkable {
		from = g.nearestWalkable(sx, sy)
	}
	if !to.Walkable {
		to = g.nearestWalkable(gx, gy)
	}
	if from == nil || to == nil {
		return nil
	}

	path, _, found := astar.Path(from, to)
	if !found || len(path) == 0 {
		return nil
	}

	points := make([]Point, len(path))
	for i, p := range path {
		node := p.(*Node)
		points[i] = g.cellCenter(node.X, node.Y)
	}
	// go-astar walks parents back from the goal
	if path[0].(*Node) == to && to != from {
		for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
			points[i], points[j] = points[j], points[i]
		}
	}
	return points
}

// Walkable reports whether the cell containing p is free of solids.
func (g *Grid) Walkable(p Point) bool {
	x, y := g.cellOf(p)
	return g.Nodes[y][x].Walkable
}

func (g *Grid) cellOf(p Point) (int, int) {
	x := clampInt(int(math.Floor(p.X/g.CellSize)), 0, g.Width-1)
	y := clampInt(int(math.Floor(p.Y/g.CellSize)), 0, g.Height-1)
	return x, y
}

func (g *Grid) nearestWalkable(x, y int) *Node {
	for radius := 1; radius < 10; radius++ {
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				nx, ny := x+dx, y+dy
				if g.inBounds(nx, ny) && g.Nodes[ny][nx].Walkable {
					return g.Nodes[ny][nx]
				}
			}
		}
	}
	return nil
}

func (g *Grid) cellCenter(x, y int) Point {
	return Point{
		X: float64(x)*g.CellSize + g.CellSize/2,
		Y: float64(y)*g.CellSize + g.CellSize/2,
	}
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
