package profile

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/macropower/cvgen/api"
)

//go:embed defaults/*.json
var defaultFS embed.FS

// WriteDefaults writes the built-in profiles into dir.
// Existing files are kept unless force is set, in which case they are backed
// up and replaced.
func WriteDefaults(dir string, force bool) ([]string, error) {
	entries, err := fs.ReadDir(defaultFS, "defaults")
	if err != nil {
		return nil, fmt.Errorf("read built-in profiles: %w", err)
	}

	paths := make([]string, 0, len(entries))

	for _, entry := range entries {
		data, err := defaultFS.ReadFile("defaults/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read built-in profile %s: %w", entry.Name(), err)
		}

		path := filepath.Join(dir, entry.Name())

		err = api.WriteDefaultFile(path, data, force, "profile")
		if err != nil {
			return nil, fmt.Errorf("write profile: %w", err)
		}

		paths = append(paths, path)
	}

	return paths, nil
}
