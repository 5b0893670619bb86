package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

const (
	// SpaceScale is resolv units per world unit. resolv buckets objects into
	// cells as if coordinates were whole pixels.
	SpaceScale = 16.0
	// SpaceMargin is how far outside the arena, in world units, the space
	// still tracks objects. Boundary walls live there.
	SpaceMargin = 4.0
)

func toSpace(v float64) float64   { return (v + SpaceMargin) * SpaceScale }
func fromSpace(v float64) float64 { return v/SpaceScale - SpaceMargin }

// NewSpace creates a collision space covering a width x height arena plus
// the margin, with square cells of cell world units.
func NewSpace(width, height, cell float64) *resolv.Space {
	c := int(cell * SpaceScale)
	if c < 1 {
		c = 1
	}
	return resolv.NewSpace(
		int((width+2*SpaceMargin)*SpaceScale),
		int((height+2*SpaceMargin)*SpaceScale),
		c, c,
	)
}

// NewObject creates a resolv object for the world-unit rectangle r.
func NewObject(r Rect, tags ...string) *resolv.Object {
	w, h := r.W*SpaceScale, r.H*SpaceScale
	obj := resolv.NewObject(toSpace(r.X), toSpace(r.Y), w, h, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	return obj
}

// Rect is an XY footprint in world units, X and Y at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Bounds returns o's footprint in world units.
func Bounds(o *resolv.Object) Rect {
	return Rect{
		X: fromSpace(o.X),
		Y: fromSpace(o.Y),
		W: o.W / SpaceScale,
		H: o.H / SpaceScale,
	}
}

// ObjectData is an entity's collision footprint. The resolv object covers the
// XY plane; Height extends it upward from the transform's Z.
type ObjectData struct {
	*resolv.Object
	Height float64
}

// Bounds returns the footprint in world units.
func (o *ObjectData) Bounds() Rect {
	return Bounds(o.Object)
}

// FootprintAt returns the footprint o would have if centred on p.
func (o *ObjectData) FootprintAt(p mgl64.Vec3) Rect {
	w, h := o.W/SpaceScale, o.H/SpaceScale
	return Rect{X: p.X() - w/2, Y: p.Y() - h/2, W: w, H: h}
}

// CheckAt runs the resolv broad phase as if o were centred on p. resolv
// scans and stores objects one unit short of their far edge, so the query is
// padded by a unit on every side; callers narrow the result with Bounds.
func (o *ObjectData) CheckAt(p mgl64.Vec3, tags ...string) *resolv.Collision {
	r := o.FootprintAt(p)
	x, y, w, h := o.X, o.Y, o.W, o.H
	defer func() { o.X, o.Y, o.W, o.H = x, y, w, h }()

	o.X, o.Y = toSpace(r.X)-1, toSpace(r.Y)-1
	o.W, o.H = w+2, h+2
	return o.Check(0, 0, tags...)
}

// ObjectsAt returns the objects in space carrying any of tags whose footprint
// contains the world point (x, y).
func ObjectsAt(space *resolv.Space, x, y float64, tags ...string) []*resolv.Object {
	var found []*resolv.Object
	for _, o := range space.Objects() {
		if len(tags) > 0 && !o.HasTags(tags...) {
			continue
		}
		if r := Bounds(o); x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H {
			found = append(found, o)
		}
	}
	return found
}

// Center moves the footprint so it is centred on p and refreshes its space cells.
func (o *ObjectData) Center(p mgl64.Vec3) {
	r := o.FootprintAt(p)
	o.X = toSpace(r.X)
	o.Y = toSpace(r.Y)
	o.Update()
}

// OverlapsZ reports whether two vertical spans [bottom, bottom+height] intersect.
func OverlapsZ(bottomA, heightA, bottomB, heightB float64) bool {
	return bottomA < bottomB+heightB && bottomB < bottomA+heightA
}

var Object = donburi.NewComponentType[ObjectData]()
