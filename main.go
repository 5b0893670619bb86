package main

import (
	"flag"
	"image"

	"github.com/automoto/wangarena/assets"
	"github.com/automoto/wangarena/config"
	"github.com/automoto/wangarena/fonts"
	"github.com/automoto/wangarena/scenes"
	"github.com/automoto/wangarena/systems"
	"github.com/automoto/wangarena/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	tuning := flag.String("config", "", "YAML tuning file (defaults to $"+config.ConfigEnv+")")
	arenaName := flag.String("arena", "", "Embedded arena name or TMX path")
	bot1 := flag.Bool("bot1", false, "Player 1 is a bot")
	bot2 := flag.Bool("bot2", false, "Player 2 is a bot")
	colliders := flag.Bool("colliders", false, "Draw collision footprints")
	skipCountdown := flag.Bool("skip-countdown", false, "Start rounds without the countdown")
	verbose := flag.Bool("v", false, "Debug logging")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	if loaded, err := config.LoadTuning(*tuning); err != nil {
		log.WithError(err).Fatal("could not load tuning")
	} else if loaded {
		log.Info("tuning overrides applied")
	}

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.WithError(err).Warn("settings will not be saved")
	}
	saved, err := systems.LoadSettings()
	if err != nil {
		log.WithError(err).Warn("ignoring saved settings")
	}
	if saved == nil {
		saved = &systems.SavedSettings{}
	}
	systems.ApplySavedSettings(saved)

	// Flags win over saved settings.
	opts := factory.ArenaOptions{Bots: saved.Bots}
	if *bot1 {
		opts.Bots[0] = true
	}
	if *bot2 {
		opts.Bots[1] = true
	}
	if *colliders {
		config.Debug.DrawColliders = true
	}
	if *skipCountdown {
		config.Debug.SkipCountdown = true
	}
	if *arenaName != "" {
		config.Arena.File = *arenaName
	}

	arena, err := assets.LoadArena(config.Arena.File)
	if err != nil {
		log.WithError(err).Fatal("could not load arena")
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.WithError(err).Fatal("could not load fonts")
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TickRate)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	runErr := ebiten.RunGame(NewGame(scenes.NewArenaScene(arena, opts)))

	saved.Fullscreen = ebiten.IsFullscreen()
	saved.DrawColliders = config.Debug.DrawColliders
	saved.Bots = opts.Bots
	saved.Arena = config.Arena.File
	if err := systems.SaveSettings(saved); err != nil {
		log.WithError(err).Warn("could not save settings")
	}

	if runErr != nil {
		log.Fatal(runErr)
	}
}
