// Package leveldata parses arena layouts from TMX files.
// It has no dependencies on ebitengine, donburi, or resolv, pure data only.
// All coordinates are world units: one tile is one unit, Z is up.
package leveldata

import "errors"

// ErrNoSpawns is returned for arenas without a spawn point for each player.
var ErrNoSpawns = errors.New("arena needs two player spawns")

// ArenaData holds everything needed to build an arena.
type ArenaData struct {
	Name            string
	Width, Height   float64
	Spawns          []SpawnPoint
	Parking         []ParkingSpot
	Platforms       []PlatformRect
	MovingPlatforms []MovingPlatform
	Walls           []Rect
}

// Rect is an axis-aligned footprint in the XY plane.
type Rect struct {
	X, Y, W, H float64
}

// SpawnPoint is where a player starts a round.
type SpawnPoint struct {
	X, Y  float64
	Yaw   float64 // radians
	Index int
}

// ParkingSpot is where a player's boomerang waits while inactive.
type ParkingSpot struct {
	X, Y, Z float64
	Index   int
}

// PlatformRect is a static platform whose upper surface sits at Top.
type PlatformRect struct {
	Rect
	Top float64
}

// MovingPlatform is a platform that follows a node path.
type MovingPlatform struct {
	Name         string
	Mode         string // lerp, catmull or bezier
	Duration     float64
	LegacyBezier bool
	Nodes        []Node
}

// Node is one path control point.
type Node struct {
	X, Y, Z float64
}

// SpawnFor returns the spawn with the given index, falling back to list order.
func (a *ArenaData) SpawnFor(index int) (SpawnPoint, bool) {
	for _, s := range a.Spawns {
		if s.Index == index {
			return s, true
		}
	}
	if index >= 0 && index < len(a.Spawns) {
		return a.Spawns[index], true
	}
	return SpawnPoint{}, false
}

// ParkingFor returns the parking spot for a player, or one tucked behind its spawn.
func (a *ArenaData) ParkingFor(index int) ParkingSpot {
	for _, p := range a.Parking {
		if p.Index == index {
			return p
		}
	}
	if s, ok := a.SpawnFor(index); ok {
		return ParkingSpot{X: s.X, Y: s.Y, Z: -2, Index: index}
	}
	return ParkingSpot{Z: -2, Index: index}
}

// Validate checks the arena can host a match.
func (a *ArenaData) Validate() error {
	if len(a.Spawns) < 2 {
		return ErrNoSpawns
	}
	if a.Width <= 0 || a.Height <= 0 {
		return errors.New("arena has no size")
	}
	return nil
}

// DefaultArena is the built-in layout used when no TMX file is configured.
func DefaultArena(width, height float64) *ArenaData {
	cx, cy := width/2, height/2
	return &ArenaData{
		Name:   "default",
		Width:  width,
		Height: height,
		Spawns: []SpawnPoint{
			{X: 6, Y: cy, Yaw: 0, Index: 0},
			{X: width - 6, Y: cy, Yaw: 3.141592653589793, Index: 1},
		},
		Parking: []ParkingSpot{
			{X: 2, Y: 2, Z: -2, Index: 0},
			{X: width - 2, Y: 2, Z: -2, Index: 1},
		},
		Platforms: []PlatformRect{
			{Rect: Rect{X: cx - 3, Y: 4, W: 6, H: 4}, Top: 1.5},
			{Rect: Rect{X: cx - 3, Y: height - 8, W: 6, H: 4}, Top: 1.5},
		},
		MovingPlatforms: []MovingPlatform{
			{
				Name:     "lift",
				Mode:     "lerp",
				Duration: 3,
				Nodes:    []Node{{X: cx, Y: cy - 6, Z: 1}, {X: cx, Y: cy + 6, Z: 1}},
			},
			{
				Name:     "orbit",
				Mode:     "catmull",
				Duration: 2,
				Nodes: []Node{
					{X: cx - 10, Y: cy - 6, Z: 2},
					{X: cx - 14, Y: cy, Z: 2.5},
					{X: cx - 10, Y: cy + 6, Z: 2},
					{X: cx - 6, Y: cy, Z: 2.5},
				},
			},
			{
				Name:     "swoop",
				Mode:     "bezier",
				Duration: 2.5,
				Nodes: []Node{
					{X: cx + 10, Y: cy - 6, Z: 1},
					{X: cx + 16, Y: cy - 2, Z: 3},
					{X: cx + 4, Y: cy + 2, Z: 3},
					{X: cx + 10, Y: cy + 6, Z: 1},
					{X: cx + 12, Y: cy + 8, Z: 1},
				},
			},
		},
	}
}
