package tags

import "github.com/yohamta/donburi"

var (
	Player         = donburi.NewTag().SetName("Player")
	Boomerang      = donburi.NewTag().SetName("Boomerang")
	Platform       = donburi.NewTag().SetName("Platform")
	MovingPlatform = donburi.NewTag().SetName("MovingPlatform")
	Wall           = donburi.NewTag().SetName("Wall")
)

// Resolv tags for collision
const (
	ResolvSolid     = "solid"
	ResolvPlatform  = "platform"
	ResolvPlayer    = "Player"
	ResolvBoomerang = "Boomerang"
)
