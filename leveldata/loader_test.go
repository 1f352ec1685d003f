package leveldata

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/automoto/adrenaline-rush/assets"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="16" tileheight="16" infinite="0">
 <tileset firstgid="1" name="walls" tilewidth="16" tileheight="16" tilecount="1" columns="1">
  <image source="walls.png" width="16" height="16"/>
 </tileset>
 <layer id="1" name="wg-tiles" width="4" height="3">
  <data encoding="csv">
0,0,0,0,
0,0,0,0,
1,1,0,1
</data>
 </layer>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="1" x="40" y="32"><point/></object>
  <object id="2" x="8" y="32"><point/></object>
 </objectgroup>
 <objectgroup id="3" name="EnemySpawn">
  <object id="3" x="56" y="32">
   <properties><property name="type" value="Brute"/></properties>
   <point/>
  </object>
  <object id="4" x="24" y="32"><point/></object>
 </objectgroup>
 <objectgroup id="4" name="Sensors">
  <object id="5" name="door" x="0" y="0" width="16" height="32"/>
 </objectgroup>
 <objectgroup id="5" name="Grass">
  <object id="6" x="0" y="28" width="32" height="4"/>
 </objectgroup>
</map>
`

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{"levels/test.tmx": {Data: []byte(testTMX)}}

	level, err := Load(fsys, "levels/test.tmx")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if level.Name != "test" || level.Width != 64 || level.Height != 48 {
		t.Fatalf("level = %q %dx%d", level.Name, level.Width, level.Height)
	}

	wantSolids := []Rect{
		{X: 0, Y: 32, W: 32, H: 16},
		{X: 48, Y: 32, W: 16, H: 16},
	}
	if len(level.Solids) != len(wantSolids) {
		t.Fatalf("solids = %v, want %v", level.Solids, wantSolids)
	}
	for i, r := range wantSolids {
		if level.Solids[i] != r {
			t.Errorf("solid %d = %v, want %v", i, level.Solids[i], r)
		}
	}

	if !level.HasPlayerSpawn || level.PlayerSpawn != (Point{X: 8, Y: 32}) {
		t.Fatalf("player spawn = %v (%v), want leftmost", level.PlayerSpawn, level.HasPlayerSpawn)
	}
	if len(level.EnemySpawns) != 2 {
		t.Fatalf("enemy spawns = %v", level.EnemySpawns)
	}
	if level.EnemySpawns[0].Type != "" || level.EnemySpawns[1].Type != "Brute" {
		t.Fatalf("enemy spawns not sorted left to right: %v", level.EnemySpawns)
	}
	if len(level.Sensors) != 1 || level.Sensors[0].Name != "door" {
		t.Fatalf("sensors = %v", level.Sensors)
	}
	if len(level.Grass) != 1 || level.Grass[0].Blades != 4 {
		t.Fatalf("grass = %v, want 4 default blades", level.Grass)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(fstest.MapFS{}, "levels/nope.tmx")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "levels/nope.tmx") {
		t.Fatalf("error %q does not name the path", err)
	}
}

func TestLoadEmbeddedLevels(t *testing.T) {
	levels, names, err := LoadAll(assets.FS, assets.LevelsDir)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(names) == 0 || names[0] != "level01" {
		t.Fatalf("names = %v", names)
	}
	level := levels["level01"]
	if !level.HasPlayerSpawn {
		t.Fatal("level01 has no player spawn")
	}
	if len(level.EnemySpawns) == 0 || len(level.Clouds) == 0 || len(level.Grass) == 0 {
		t.Fatalf("level01 is missing objects: %+v", level)
	}
	if level.Clouds[0].MaxClouds != 30 {
		t.Fatalf("cloud maxClouds = %d", level.Clouds[0].MaxClouds)
	}
}

func TestLoadPathPrefersDisk(t *testing.T) {
	dir := t.TempDir()
	onDisk := filepath.Join(dir, "edited.tmx")
	if err := os.WriteFile(onDisk, []byte(testTMX), 0o644); err != nil {
		t.Fatal(err)
	}

	level, err := LoadPath(fstest.MapFS{}, onDisk)
	if err != nil {
		t.Fatalf("LoadPath disk: %v", err)
	}
	if level.Name != "edited" {
		t.Fatalf("Name = %q", level.Name)
	}

	fallback := fstest.MapFS{"levels/test.tmx": {Data: []byte(testTMX)}}
	level, err = LoadPath(fallback, "levels/test.tmx")
	if err != nil {
		t.Fatalf("LoadPath fallback: %v", err)
	}
	if level.Name != "test" {
		t.Fatalf("Name = %q", level.Name)
	}
}
