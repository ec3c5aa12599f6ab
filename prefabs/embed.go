package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed templates/*.yaml
var TemplatesFS embed.FS

// Load reads a template file, preferring an on-disk copy under
// prefabs/templates/ so users can override the embedded defaults.
func Load(name string) ([]byte, error) {
	clean := cleanTemplatePath(name)
	if data, err := os.ReadFile(diskTemplatePath(clean)); err == nil {
		return data, nil
	}
	return TemplatesFS.ReadFile("templates/" + clean)
}

// List returns the available template file names: the embedded defaults
// plus any extra .yaml files found on disk.
func List() ([]string, error) {
	seen := make(map[string]bool)
	entries, err := TemplatesFS.ReadDir("templates")
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		seen[e.Name()] = true
	}
	if disk, err := os.ReadDir(filepath.Join("prefabs", "templates")); err == nil {
		for _, e := range disk {
			if !e.IsDir() && isTemplateFile(e.Name()) {
				seen[e.Name()] = true
			}
		}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}

func cleanTemplatePath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	for _, prefix := range []string{"prefabs/templates/", "prefabs/", "templates/"} {
		if after, ok := strings.CutPrefix(s, prefix); ok {
			s = after
		}
	}
	return s
}

func diskTemplatePath(clean string) string {
	return filepath.Join("prefabs", "templates", filepath.FromSlash(clean))
}
