package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Index     int
	Opponent  string         // scene name of the player this one locks onto
	Boomerang donburi.Entity // the player's own boomerang
	Yaw       float64        // facing, radians about +Z
	Spawn     mgl64.Vec3
	SpawnYaw  float64

	OnGround bool
	Support  *resolv.Object // platform stood on, nil on the floor or in the air
}

var Player = donburi.NewComponentType[PlayerData]()
