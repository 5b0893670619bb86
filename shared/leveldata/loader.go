package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names read from arena files.
const (
	GroupPlayerSpawn     = "PlayerSpawn"
	GroupParking         = "Parking"
	GroupPlatforms       = "Platforms"
	GroupMovingPlatforms = "MovingPlatforms"
	GroupWalls           = "Walls"
)

// LoadArena parses a TMX file into arena data. It takes an fs.FS so callers can
// pass embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*ArenaData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return nil, fmt.Errorf("load TMX %s: tile size must be positive", tmxPath)
	}

	sx := 1 / float64(levelMap.TileWidth)
	sy := 1 / float64(levelMap.TileHeight)

	data := &ArenaData{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  float64(levelMap.Width),
		Height: float64(levelMap.Height),
	}

	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			switch og.Name {
			case GroupPlayerSpawn:
				data.Spawns = append(data.Spawns, SpawnPoint{
					X:     o.X * sx,
					Y:     o.Y * sy,
					Yaw:   o.Properties.GetFloat("yaw"),
					Index: o.Properties.GetInt("index"),
				})
			case GroupParking:
				data.Parking = append(data.Parking, ParkingSpot{
					X:     o.X * sx,
					Y:     o.Y * sy,
					Z:     o.Properties.GetFloat("z"),
					Index: o.Properties.GetInt("index"),
				})
			case GroupPlatforms:
				data.Platforms = append(data.Platforms, PlatformRect{
					Rect: Rect{X: o.X * sx, Y: o.Y * sy, W: o.Width * sx, H: o.Height * sy},
					Top:  o.Properties.GetFloat("top"),
				})
			case GroupWalls:
				data.Walls = append(data.Walls, Rect{X: o.X * sx, Y: o.Y * sy, W: o.Width * sx, H: o.Height * sy})
			case GroupMovingPlatforms:
				mp, err := movingPlatform(o, sx, sy)
				if err != nil {
					return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
				}
				data.MovingPlatforms = append(data.MovingPlatforms, mp)
			}
		}
	}

	sort.Slice(data.Spawns, func(i, j int) bool {
		return data.Spawns[i].Index < data.Spawns[j].Index
	})

	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	return data, nil
}

// movingPlatform reads a polyline object. Points are relative to the object origin.
func movingPlatform(o *tiled.Object, sx, sy float64) (MovingPlatform, error) {
	mp := MovingPlatform{
		Name:         o.Name,
		Mode:         o.Properties.GetString("mode"),
		Duration:     o.Properties.GetFloat("duration"),
		LegacyBezier: o.Properties.GetBool("legacyBezier"),
	}
	if len(o.PolyLines) == 0 || o.PolyLines[0].Points == nil {
		return mp, fmt.Errorf("moving platform %q has no polyline", o.Name)
	}

	z := o.Properties.GetFloat("z")
	for _, pt := range *o.PolyLines[0].Points {
		mp.Nodes = append(mp.Nodes, Node{
			X: (o.X + pt.X) * sx,
			Y: (o.Y + pt.Y) * sy,
			Z: z,
		})
	}
	return mp, nil
}

// LoadAllArenas discovers all .tmx files in dir within fsys and returns them
// keyed by stem name plus a sorted list of names.
func LoadAllArenas(fsys fs.FS, dir string) (map[string]*ArenaData, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*ArenaData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadArena(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		arenas[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return arenas, names, nil
}
