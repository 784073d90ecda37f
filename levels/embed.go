package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed *.txt
var LevelsFS embed.FS

// Load reads a level by name. A file under levels/ on disk takes precedence
// over the embedded copy so levels can be edited without rebuilding.
func Load(name string) (*Level, error) {
	clean := cleanLevelPath(name)
	data, err := os.ReadFile(DiskPath(clean))
	if err != nil {
		data, err = fs.ReadFile(LevelsFS, clean)
	}
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", clean, err)
	}
	lvl, err := ParseString(string(data))
	if err != nil {
		return nil, fmt.Errorf("levels: parse %s: %w", clean, err)
	}
	return lvl, nil
}

// LoadFile reads a level from an arbitrary path on disk.
func LoadFile(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", path, err)
	}
	lvl, err := ParseString(string(data))
	if err != nil {
		return nil, fmt.Errorf("levels: parse %s: %w", path, err)
	}
	return lvl, nil
}

// Names lists the embedded levels without extension, sorted.
func Names() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		out = append(out, strings.TrimSuffix(e.Name(), ".txt"))
	}
	sort.Strings(out)
	return out
}

// DiskPath maps a cleaned level name to its on-disk location.
func DiskPath(clean string) string {
	return filepath.Join("levels", filepath.FromSlash(clean))
}

// IsPath reports whether path is the on-disk file Load(name) reads first.
func IsPath(name, path string) bool {
	want, err := filepath.Abs(DiskPath(cleanLevelPath(name)))
	if err != nil {
		return false
	}
	got, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	return want == got
}

func cleanLevelPath(name string) string {
	s := filepath.ToSlash(strings.TrimSpace(name))
	s = strings.TrimPrefix(s, "levels/")
	if s != "" && !strings.HasSuffix(s, ".txt") {
		s += ".txt"
	}
	return s
}
