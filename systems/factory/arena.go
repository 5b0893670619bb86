package factory

import (
	"fmt"

	"github.com/automoto/wangarena/components"
	cfg "github.com/automoto/wangarena/config"
	"github.com/automoto/wangarena/shared/leveldata"
	"github.com/go-gl/mathgl/mgl64"
	log "github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaOptions selects how each player slot is driven.
type ArenaOptions struct {
	Bots [2]bool
}

// CreateArena builds every entity of an arena: collision space, walls,
// platforms, both players and their boomerangs. It returns the players.
func CreateArena(ecs *ecs.ECS, arena *leveldata.ArenaData, opts ArenaOptions) ([2]*donburi.Entry, error) {
	var players [2]*donburi.Entry
	if err := arena.Validate(); err != nil {
		return players, fmt.Errorf("arena %s: %w", arena.Name, err)
	}

	space := CreateSpace(ecs, arena.Width, arena.Height, cfg.Arena.CellSize)
	components.ArenaBounds.Get(space).Name = arena.Name
	CreateBoundary(ecs, arena.Width, arena.Height, cfg.Arena.WallThickness)

	for _, w := range arena.Walls {
		CreateWall(ecs, w.X, w.Y, w.W, w.H)
	}
	for _, p := range arena.Platforms {
		CreatePlatform(ecs, p.X, p.Y, p.W, p.H, p.Top)
	}
	for _, mp := range arena.MovingPlatforms {
		mode, err := components.ParsePathMode(mp.Mode)
		if err != nil {
			return players, fmt.Errorf("arena %s: platform %s: %w", arena.Name, mp.Name, err)
		}
		duration := mp.Duration
		if duration <= 0 {
			duration = cfg.Platform.SegmentDuration
		}
		nodes := make([]mgl64.Vec3, len(mp.Nodes))
		for i, n := range mp.Nodes {
			nodes[i] = mgl64.Vec3{n.X, n.Y, n.Z}
		}
		platform := CreateMovingPlatform(ecs, mp.Name, nodes, mode, duration)
		if mp.LegacyBezier {
			components.PathFollower.Get(platform).LegacyBezierBasis = true
		}
		if len(nodes) < mode.MinNodes() {
			log.WithField("platform", mp.Name).Warnf("%d nodes is too few for %s, platform will not move", len(nodes), mode)
		}
	}

	for i := range players {
		spawn, _ := arena.SpawnFor(i)
		pos := mgl64.Vec3{spawn.X, spawn.Y, 0}
		if opts.Bots[i] {
			players[i] = CreateBot(ecs, i, pos, spawn.Yaw)
		} else {
			players[i] = CreatePlayer(ecs, i, pos, spawn.Yaw)
		}
		park := arena.ParkingFor(i)
		CreateBoomerang(ecs, players[i], mgl64.Vec3{park.X, park.Y, park.Z})
	}

	log.WithField("arena", arena.Name).Debugf("built %d platforms, %d moving", len(arena.Platforms), len(arena.MovingPlatforms))
	return players, nil
}
