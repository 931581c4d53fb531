package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
	"time"
)

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

//go:embed *.yaml
var PrefabsFS embed.FS

// Dir is the on-disk prefab directory checked before the embedded copy, so
// tuning can be edited without rebuilding.
var Dir = "prefabs"

func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

func LoadScript(name string) ([]byte, error) {
	clean := "scripts/" + strings.TrimPrefix(cleanPrefabPath(name), "scripts/")
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return ScriptsFS.ReadFile(clean)
}

func ModTime(name string) (time.Time, bool) {
	info, err := os.Stat(diskPath(cleanPrefabPath(name)))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, Dir+"/"); ok {
		return after
	}
	return s
}

func diskPath(clean string) string {
	return filepath.Join(Dir, filepath.FromSlash(clean))
}
