package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed layouts/*.yaml
var LayoutsFS embed.FS

// Load returns a layout document, preferring the on-disk copy under
// prefabs/layouts so edits show up without a rebuild.
func Load(name string) ([]byte, error) {
	clean := cleanLayoutPath(name)
	if data, err := os.ReadFile(diskLayoutPath(clean)); err == nil {
		return data, nil
	}
	return LayoutsFS.ReadFile(clean)
}

func cleanLayoutPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	s = strings.TrimPrefix(s, "prefabs/")
	s = strings.TrimPrefix(s, "layouts/")
	if filepath.Ext(s) == "" {
		s += ".yaml"
	}
	return "layouts/" + s
}

func diskLayoutPath(clean string) string {
	return filepath.Join("prefabs", filepath.FromSlash(clean))
}
