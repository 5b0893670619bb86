package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ConfigEnv names the environment variable consulted when no tuning path is given.
const ConfigEnv = "WANGARENA_CONFIG"

// tuningFile mirrors the global config sections that may be overridden from YAML.
// Keys missing from the file keep their compiled-in defaults.
type tuningFile struct {
	Game      Config          `yaml:"game"`
	Boomerang BoomerangConfig `yaml:"boomerang"`
	Platform  PlatformConfig  `yaml:"platform"`
	Player    PlayerConfig    `yaml:"player"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Health    HealthConfig    `yaml:"health"`
	Arena     ArenaConfig     `yaml:"arena"`
	Match     MatchConfig     `yaml:"match"`
	Debug     DebugConfig     `yaml:"debug"`
	Bot       BotConfigData   `yaml:"bot"`
}

// LoadTuning reads a YAML tuning file and overlays it onto the global config.
// If path is empty, WANGARENA_CONFIG is used; with neither set it is a no-op
// and reports false.
func LoadTuning(path string) (bool, error) {
	if path == "" {
		path = os.Getenv(ConfigEnv)
		if path == "" {
			return false, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read tuning %s: %w", path, err)
	}
	if err := ApplyTuning(data); err != nil {
		return false, fmt.Errorf("parse tuning %s: %w", path, err)
	}
	return true, nil
}

// ApplyTuning overlays raw YAML onto the global config.
func ApplyTuning(data []byte) error {
	t := tuningFile{
		Game:      *C,
		Boomerang: Boomerang,
		Platform:  Platform,
		Player:    Player,
		Physics:   Physics,
		Health:    Health,
		Arena:     Arena,
		Match:     Match,
		Debug:     Debug,
		Bot:       Bot,
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return err
	}

	game := t.Game
	C = &game
	Boomerang = t.Boomerang
	Platform = t.Platform
	Player = t.Player
	Physics = t.Physics
	Health = t.Health
	Arena = t.Arena
	Match = t.Match
	Debug = t.Debug
	Bot = t.Bot
	return nil
}
