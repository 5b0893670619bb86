package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/wangarena/config"
	"github.com/automoto/wangarena/shared/leveldata"
	"github.com/automoto/wangarena/systems"
	"github.com/automoto/wangarena/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene is the split-screen duel.
type ArenaScene struct {
	ecs   *ecs.ECS
	arena *leveldata.ArenaData
	opts  factory.ArenaOptions
	once  sync.Once
}

// NewArenaScene creates the duel scene for arena. Entities are built on the
// first Update.
func NewArenaScene(arena *leveldata.ArenaData, opts factory.ArenaOptions) *ArenaScene {
	return &ArenaScene{arena: arena, opts: opts}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateBots) // Must run before UpdatePlayers
	ecs.AddSystem(systems.UpdatePlayers)
	ecs.AddSystem(systems.UpdateBoomerang)
	ecs.AddSystem(systems.UpdatePlatforms)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateCollisions)
	ecs.AddSystem(systems.UpdateHealth)
	ecs.AddSystem(systems.UpdateMatch)
	ecs.AddSystem(systems.NewRoundRecorder())

	ecs.AddRenderer(cfg.Default, systems.DrawArena)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	as.ecs = ecs

	factory.CreateClock(as.ecs)
	if _, err := factory.CreateArena(as.ecs, as.arena, as.opts); err != nil {
		// Arenas are validated before the scene is built.
		log.WithError(err).Panic("could not build arena")
	}
	factory.CreateMatch(as.ecs)

	log.WithFields(log.Fields{
		"arena": as.arena.Name,
		"bots":  as.opts.Bots,
	}).Info("arena ready")
}
