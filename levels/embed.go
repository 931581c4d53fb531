package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed *.json
var LevelsFS embed.FS

// Tile legend used in Level.Rows.
const (
	TileFloor    = '.'
	TileBoundary = '#'
	TileGrass    = 'g'
	TileObject   = 'o'
	TilePlayer   = 'P'
)

// MonsterTiles maps a legend character to a monster kind.
var MonsterTiles = map[rune]string{
	's': "squid",
	'r': "raccoon",
	'p': "spirit",
	'b': "bamboo",
}

var ErrNoPlayer = errors.New("levels: no player spawn")

// Level is a tile map plus free-placed objects and entities. Each rune of
// Rows is one tile; see the Tile constants and MonsterTiles for the legend.
type Level struct {
	Name     string   `json:"name"`
	TileSize int      `json:"tile_size"`
	Rows     []string `json:"rows"`
	Objects  []Object `json:"objects,omitempty"`
	Entities []Entity `json:"entities,omitempty"`
}

// Object is an impassable prop with an explicit pixel footprint.
type Object struct {
	Kind   string `json:"kind"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Entity is a spawn placed in pixels, top-left anchored.
type Entity struct {
	Type string `json:"type"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

// Cols is the width of the widest row, in tiles.
func (l *Level) Cols() int {
	if l == nil {
		return 0
	}
	cols := 0
	for _, row := range l.Rows {
		if n := len([]rune(row)); n > cols {
			cols = n
		}
	}
	return cols
}

// PixelSize returns the world size in pixels.
func (l *Level) PixelSize() (int, int) {
	if l == nil {
		return 0, 0
	}
	return l.Cols() * l.TileSize, len(l.Rows) * l.TileSize
}

// Tiles calls fn for every non-floor tile with its top-left pixel.
func (l *Level) Tiles(fn func(tile rune, x, y int)) {
	if l == nil || fn == nil {
		return
	}
	for r, row := range l.Rows {
		for c, ch := range []rune(row) {
			if ch == TileFloor || ch == ' ' {
				continue
			}
			fn(ch, c*l.TileSize, r*l.TileSize)
		}
	}
}

// Spawns returns the tile-placed entities followed by Entities.
func (l *Level) Spawns() []Entity {
	if l == nil {
		return nil
	}
	var out []Entity
	l.Tiles(func(tile rune, x, y int) {
		if tile == TilePlayer {
			out = append(out, Entity{Type: "player", X: x, Y: y})
			return
		}
		if kind, ok := MonsterTiles[tile]; ok {
			out = append(out, Entity{Type: kind, X: x, Y: y})
		}
	})
	return append(out, l.Entities...)
}

// Validate checks the level can be played.
func (l *Level) Validate() error {
	if l.TileSize <= 0 {
		return fmt.Errorf("levels: %s: tile size %d", l.Name, l.TileSize)
	}
	if len(l.Rows) == 0 {
		return fmt.Errorf("levels: %s: no rows", l.Name)
	}
	for _, s := range l.Spawns() {
		if s.Type == "player" {
			return nil
		}
	}
	return fmt.Errorf("%w in %s", ErrNoPlayer, l.Name)
}

// Parse decodes and validates a level.
func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

func LoadLevelFromFS(name string) (*Level, error) {
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return Parse(data)
}

// Load reads name from the levels directory on disk if present, falling back
// to the embedded copy.
func Load(name string) (*Level, error) {
	if data, err := os.ReadFile(filepath.Join("levels", name)); err == nil {
		return Parse(data)
	}
	return LoadLevelFromFS(name)
}
