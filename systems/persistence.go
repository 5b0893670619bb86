package systems

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/wangarena/components"
	cfg "github.com/automoto/wangarena/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	log "github.com/sirupsen/logrus"
	"github.com/yohamta/donburi/ecs"
)

const (
	settingsItem = "settings"
	recordItem   = "record"
)

// SavedSettings represents the client settings stored on disk
type SavedSettings struct {
	Fullscreen    bool    `json:"fullscreen"`
	DrawColliders bool    `json:"drawColliders"`
	Bots          [2]bool `json:"bots"`
	Arena         string  `json:"arena"`
}

// SavedRecord is the lifetime round tally per player slot
type SavedRecord struct {
	RoundWins [2]int `json:"roundWins"`
	Rounds    int    `json:"rounds"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "wangarena",
	})
	if err != nil {
		log.WithError(err).Warn("could not initialize persistence")
		return fmt.Errorf("open gdata: %w", err)
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil without an error when
// persistence is unavailable or nothing was saved yet.
func LoadSettings() (*SavedSettings, error) {
	var s SavedSettings
	ok, err := loadItem(settingsItem, &s)
	if !ok {
		return nil, err
	}
	return &s, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	return saveItem(settingsItem, s)
}

// LoadRecord loads the lifetime tally, or a zero record.
func LoadRecord() (*SavedRecord, error) {
	var r SavedRecord
	if _, err := loadItem(recordItem, &r); err != nil {
		return &SavedRecord{}, err
	}
	return &r, nil
}

// RecordRound adds a finished round from match to the saved tally.
func RecordRound(match *components.MatchData) error {
	if gdataManager == nil {
		return nil
	}
	r, err := LoadRecord()
	if err != nil {
		return err
	}
	r.Rounds++
	if match.Winner >= 0 && match.Winner < len(r.RoundWins) {
		r.RoundWins[match.Winner]++
	}
	return saveItem(recordItem, r)
}

// ApplySavedSettings applies loaded settings to the window and global config
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	if saved.Fullscreen {
		ebiten.SetFullscreen(true)
	}
	cfg.Debug.DrawColliders = saved.DrawColliders
	if saved.Arena != "" && cfg.Arena.File == "" {
		cfg.Arena.File = saved.Arena
	}
}

// NewRoundRecorder returns a system that saves each round result once, when
// the match enters its results phase.
func NewRoundRecorder() func(*ecs.ECS) {
	lastRound := 0
	return func(ecs *ecs.ECS) {
		entry, ok := components.Match.First(ecs.World)
		if !ok {
			return
		}
		match := components.Match.Get(entry)
		if match.State != components.MatchFinished || match.Round == lastRound {
			return
		}
		lastRound = match.Round
		if err := RecordRound(match); err != nil {
			log.WithError(err).Warn("could not save round record")
		}
	}
}

func loadItem(key string, v any) (bool, error) {
	if gdataManager == nil {
		return false, nil
	}
	data, err := gdataManager.LoadItem(key)
	if err != nil {
		log.WithError(err).WithField("item", key).Warn("could not load")
		return false, nil
	}
	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return true, nil
}

func saveItem(key string, v any) error {
	if gdataManager == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := gdataManager.SaveItem(key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
