package systems

import (
	"math"
	"testing"

	"github.com/automoto/adrenaline-rush/components"
	cfg "github.com/automoto/adrenaline-rush/config"
	"github.com/automoto/adrenaline-rush/nav"
	"github.com/automoto/adrenaline-rush/systems/factory"
	"github.com/yohamta/donburi"
)

func withNavGrid(w donburi.World) {
	factory.CreateNavigation(w, nav.Build(spaceOf(w), 640, 360, cfg.Pathfinding.CellSize))
}

func TestPathfindingRepathsFollowers(t *testing.T) {
	w := newTestWorld(t)
	withNavGrid(w)
	player := factory.CreatePlayer(w, 100, floorY)
	enemy := spawnEnemy(t, w, 300, "")
	path := components.Pathfinder.Get(enemy)
	path.Follow(player.Entity())

	UpdatePathfinding(w, dt60)

	if len(path.Waypoints) == 0 {
		t.Fatal("no waypoints after following")
	}
	first, last := path.Waypoints[0], path.Waypoints[len(path.Waypoints)-1]
	if math.Abs(first.X-300) > 24 {
		t.Fatalf("first waypoint %v is not near the enemy", first)
	}
	if math.Abs(last.X-100) > 24 {
		t.Fatalf("last waypoint %v is not near the player", last)
	}
	if path.RepathTimer != cfg.Pathfinding.RepathInterval {
		t.Fatalf("RepathTimer = %v", path.RepathTimer)
	}

	// No repath until the interval runs out
	path.Waypoints = nil
	UpdatePathfinding(w, dt60)
	if path.Waypoints != nil {
		t.Fatal("repathed before the interval")
	}
	UpdatePathfinding(w, cfg.Pathfinding.RepathInterval)
	if len(path.Waypoints) == 0 {
		t.Fatal("did not repath after the interval")
	}
}

func TestPathfindingSkipsDisabled(t *testing.T) {
	w := newTestWorld(t)
	withNavGrid(w)
	player := factory.CreatePlayer(w, 100, floorY)
	enemy := spawnEnemy(t, w, 300, "")
	path := components.Pathfinder.Get(enemy)
	path.Disable()
	path.Follow(player.Entity())

	for i := 0; i < 10; i++ {
		UpdatePathfinding(w, cfg.Pathfinding.RepathInterval)
	}
	if path.Following || len(path.Waypoints) != 0 {
		t.Fatalf("disabled pathfinder moved: %+v", path)
	}
}

func TestPathfindingStopsOnRemovedTarget(t *testing.T) {
	w := newTestWorld(t)
	withNavGrid(w)
	player := factory.CreatePlayer(w, 100, floorY)
	enemy := spawnEnemy(t, w, 300, "")
	path := components.Pathfinder.Get(enemy)
	path.Follow(player.Entity())

	w.Remove(player.Entity())
	UpdatePathfinding(w, dt60)

	if path.Following {
		t.Fatal("still following a removed target")
	}
}
