package profile

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/macropower/cvgen/pkg/loader"
)

// DefaultID is the profile used when none is requested and the catalog has one.
const DefaultID = "balanced"

// Extensions are the file extensions recognized as profiles, in lookup order.
var Extensions = []string{".json", ".yaml", ".yml"}

// Summary describes one profile in a profiles directory.
type Summary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Path        string `json:"path"`
}

// List returns every valid profile in dir, sorted by file name.
// Files that fail to load are skipped. A missing directory yields an empty list.
func List(dir string) ([]Summary, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []Summary{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read profiles directory: %w", err)
	}

	summaries := []Summary{}

	for _, entry := range entries {
		if entry.IsDir() || !hasProfileExt(entry.Name()) {
			continue
		}

		path := filepath.Join(dir, entry.Name())

		p, err := Load(path)
		if err != nil {
			slog.Debug("skip invalid profile",
				slog.String("path", path),
				slog.Any("err", err),
			)

			continue
		}

		stem := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		s := Summary{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Path:        path,
		}
		if s.ID == "" {
			s.ID = stem
		}
		if s.Name == "" {
			s.Name = stem
		}

		summaries = append(summaries, s)
	}

	return summaries, nil
}

// Resolve turns a profile argument into a file path.
//
// The argument may be a path to a profile file, a file stem in dir, or the
// profileId of a profile in dir. When nothing matches, the returned error
// wraps [loader.ErrNotFound] and suggests similar profile ids.
func Resolve(arg, dir string) (string, error) {
	if hasProfileExt(arg) && isFile(arg) {
		return arg, nil
	}

	for _, ext := range Extensions {
		path := filepath.Join(dir, arg+ext)
		if isFile(path) {
			return path, nil
		}
	}

	summaries, err := List(dir)
	if err != nil {
		return "", err
	}

	ids := make([]string, 0, len(summaries))
	for _, s := range summaries {
		if s.ID == arg {
			return s.Path, nil
		}

		ids = append(ids, s.ID)
	}

	return "", notFoundError(arg, dir, ids)
}

// Default returns the path of the default profile in dir, or "" if there is none.
func Default(dir string) string {
	path, err := Resolve(DefaultID, dir)
	if err != nil {
		return ""
	}

	return path
}

func notFoundError(arg, dir string, ids []string) error {
	msg := fmt.Sprintf("profile %q in %s", arg, dir)

	matches := fuzzy.Find(arg, ids)
	if len(matches) == 0 {
		// Also suggest ids that the argument extends, e.g. "sales" for "sales-v2".
		for _, id := range ids {
			if len(fuzzy.Find(id, []string{arg})) > 0 {
				matches = append(matches, fuzzy.Match{Str: id})
			}
		}
	}

	suggestions := make([]string, 0, len(matches))
	for _, m := range matches {
		suggestions = append(suggestions, m.Str)
	}

	suggestions = slices.Compact(suggestions)
	if len(suggestions) > 0 {
		msg += fmt.Sprintf(", did you mean %s?", strings.Join(suggestions, ", "))
	} else if len(ids) > 0 {
		msg += fmt.Sprintf(", available: %s", strings.Join(ids, ", "))
	}

	return fmt.Errorf("%w: %s", loader.ErrNotFound, msg)
}

func hasProfileExt(name string) bool {
	return slices.Contains(Extensions, strings.ToLower(filepath.Ext(name)))
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
