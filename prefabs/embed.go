package prefabs

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var PrefabsFS embed.FS

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// Load reads a prefab spec such as "avatar.yaml".
func Load(name string) ([]byte, error) {
	return readPrefab(PrefabsFS, cleanPrefabPath(name))
}

// LoadScript reads an input script by name; the .tengo suffix is optional.
func LoadScript(name string) ([]byte, error) {
	return readPrefab(ScriptsFS, cleanScriptPath(name))
}

// readPrefab prefers the copy under prefabs/ on disk so edits apply
// without a rebuild, falling back to the embedded file.
func readPrefab(embedded fs.FS, clean string) ([]byte, error) {
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return fs.ReadFile(embedded, clean)
}

func cleanPrefabPath(name string) string {
	return strings.TrimPrefix(filepath.ToSlash(name), "prefabs/")
}

func cleanScriptPath(name string) string {
	s := strings.TrimPrefix(cleanPrefabPath(name), "scripts/")
	if !strings.HasSuffix(s, ".tengo") {
		s += ".tengo"
	}
	return "scripts/" + s
}

func diskPrefabPath(clean string) string {
	return filepath.Join("prefabs", filepath.FromSlash(clean))
}
