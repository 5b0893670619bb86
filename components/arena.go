package components

import "github.com/yohamta/donburi"

// ArenaBoundsData is the playable floor, from (0, 0) to (Width, Height).
// Stored with the collision space.
type ArenaBoundsData struct {
	Name          string
	Width, Height float64
}

var ArenaBounds = donburi.NewComponentType[ArenaBoundsData]()
