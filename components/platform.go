package components

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// PathMode selects the interpolation basis of a moving platform.
type PathMode int

const (
	PathLerp PathMode = iota
	PathCatmullRom
	PathBezier
)

func (m PathMode) String() string {
	switch m {
	case PathLerp:
		return "lerp"
	case PathCatmullRom:
		return "catmull"
	case PathBezier:
		return "bezier"
	}
	return fmt.Sprintf("PathMode(%d)", int(m))
}

// MinNodes is the fewest nodes the mode can move along.
func (m PathMode) MinNodes() int {
	if m == PathLerp {
		return 2
	}
	return 4
}

// ParsePathMode parses the level file spelling of a mode.
func ParsePathMode(s string) (PathMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "lerp", "linear":
		return PathLerp, nil
	case "catmull", "catmullrom", "catmull_rom", "catmull-rom":
		return PathCatmullRom, nil
	case "bezier":
		return PathBezier, nil
	}
	return PathLerp, fmt.Errorf("unknown path mode %q", s)
}

// PathFollowerData moves a platform back and forth along its nodes.
type PathFollowerData struct {
	Nodes           []mgl64.Vec3
	Mode            PathMode
	SegmentDuration float64
	CurrentIndex    int
	Forward         bool
	Elapsed         float64
	T               float64

	// LegacyBezierBasis evaluates PathBezier with the Catmull-Rom blend.
	LegacyBezierBasis bool
}

// SetMode changes the basis and restarts the path from its first node.
func (p *PathFollowerData) SetMode(mode PathMode) {
	p.Mode = mode
	p.Elapsed = 0
	p.T = 0
	p.CurrentIndex = 0
	p.Forward = true
}

// SetNodes replaces the path. Progress is kept; call SetMode to restart.
func (p *PathFollowerData) SetNodes(nodes []mgl64.Vec3, duration float64) {
	p.Nodes = append([]mgl64.Vec3(nil), nodes...)
	p.SegmentDuration = duration
}

// Movable reports whether the path has enough nodes and time to move.
func (p *PathFollowerData) Movable() bool {
	return len(p.Nodes) >= p.Mode.MinNodes() && p.SegmentDuration > 0
}

var PathFollower = donburi.NewComponentType[PathFollowerData]()
