package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

// Version is the save format written by Write.
const Version = 1

// DefaultPath is where the game saves when no path is given.
const DefaultPath = "savegame.json"

var ErrVersion = errors.New("save: unsupported version")

// Point is a pixel position.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PlayerState is the persisted part of the player.
type PlayerState struct {
	Pos         Point              `json:"pos" jsonschema:"description=hitbox center in pixels"`
	Health      float64            `json:"health"`
	Energy      float64            `json:"energy"`
	Exp         float64            `json:"exp"`
	Stats       map[string]float64 `json:"stats"`
	MaxStats    map[string]float64 `json:"max_stats"`
	UpgradeCost map[string]float64 `json:"upgrade_cost"`
	WeaponIndex int                `json:"weapon_index"`
	MagicIndex  int                `json:"magic_index"`
}

// State is a full save file.
type State struct {
	Version int         `json:"version"`
	Level   string      `json:"level"`
	Player  PlayerState `json:"player"`
	// DefeatedMonsters and DestroyedGrass hold level placements that must not
	// respawn on load.
	DefeatedMonsters []Point `json:"defeated_monsters"`
	DestroyedGrass   []Point `json:"destroyed_grass"`
}

// Write stores st at path, replacing any previous file.
func Write(path string, st *State) error {
	if st == nil {
		return fmt.Errorf("save: write %s: nil state", path)
	}
	if st.Version == 0 {
		st.Version = Version
	}
	data, err := json.MarshalIndent(st, "", "    ")
	if err != nil {
		return fmt.Errorf("save: marshal: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("save: create directory: %w", err)
		}
	}
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("save: write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("save: replace %s: %w", path, err)
	}
	return nil
}

// Read loads the save at path. A missing file is not an error: it returns
// nil, nil.
func Read(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("save: read %s: %w", path, err)
	}

	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("save: unmarshal %s: %w", path, err)
	}
	if st.Version != Version {
		return nil, fmt.Errorf("%w %d in %s", ErrVersion, st.Version, path)
	}
	return &st, nil
}

// Schema describes the save file format.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}
	schema := reflector.Reflect(new(State))
	schema.Title = "Overworld Save"
	schema.Description = "Player progress and the level placements that stay cleared across sessions"
	return schema
}

// SchemaJSON is Schema rendered as indented JSON.
func SchemaJSON() ([]byte, error) {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("save: marshal schema: %w", err)
	}
	return data, nil
}
