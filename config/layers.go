package config

import "github.com/yohamta/donburi/ecs"

const (
	// Default is the only render layer; the scene draws each viewport itself.
	Default ecs.LayerID = iota
)
