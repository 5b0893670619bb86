// Package assets embeds the arenas shipped with the game.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	cfg "github.com/automoto/wangarena/config"
	"github.com/automoto/wangarena/shared/leveldata"
	log "github.com/sirupsen/logrus"
)

//go:embed all:arenas
var assetFS embed.FS

// ArenaDir is the embedded directory holding the arena TMX files.
const ArenaDir = "arenas"

// DefaultArenaName is played when nothing else is selected.
const DefaultArenaName = "duel"

// BuiltinArenaName selects the layout generated in code, sized by the arena config.
const BuiltinArenaName = "default"

// Arenas loads every embedded arena keyed by file name without extension,
// plus the sorted list of names.
func Arenas() (map[string]*leveldata.ArenaData, []string, error) {
	return leveldata.LoadAllArenas(assetFS, ArenaDir)
}

// LoadArena resolves name to an arena. Names of embedded arenas load from the
// binary; anything else is treated as a TMX path on disk. An empty name
// selects DefaultArenaName.
func LoadArena(name string) (*leveldata.ArenaData, error) {
	switch name {
	case "":
		name = DefaultArenaName
	case BuiltinArenaName:
		return leveldata.DefaultArena(cfg.Arena.Width, cfg.Arena.Height), nil
	}

	embedded := filepath.ToSlash(filepath.Join(ArenaDir, name+".tmx"))
	if _, err := fs.Stat(assetFS, embedded); err == nil {
		return leveldata.LoadArena(assetFS, embedded)
	}

	if _, err := os.Stat(name); err != nil {
		return nil, fmt.Errorf("arena %q is neither embedded nor a file: %w", name, err)
	}
	dir, file := filepath.Split(name)
	if dir == "" {
		dir = "."
	}
	log.WithField("path", name).Info("loading arena from disk")
	return leveldata.LoadArena(os.DirFS(dir), file)
}
