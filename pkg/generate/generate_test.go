package generate_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/cvgen/pkg/generate"
	"github.com/macropower/cvgen/pkg/loader"
)

const (
	masterJSON = `{
  "basics": {"name": "Ada Lovelace", "email": "ada@example.com"},
  "work": [
    {"company": "Analytical Engines", "title": "Engineer"},
    {"company": "Old Mill", "title": "Clerk", "isEarlierExperience": true}
  ]
}
`
	salesJSON = `{
  "profileId": "sales",
  "name": "Sales",
  "earlierExperienceDisplay": {"defaultMode": "list-only"}
}
`
	templateMD = `# {{.name}}
{{.email}}
{{range .work}}- {{.company}}
{{end}}mode={{.earlier_experience_mode}} profile={{or .profile_id "none"}}
`
)

func writeFixtures(t *testing.T) (string, *generate.Generator) {
	t.Helper()

	dir := t.TempDir()
	profiles := filepath.Join(dir, "profiles")
	require.NoError(t, os.MkdirAll(profiles, 0o755))

	files := map[string]string{
		filepath.Join(dir, "master.json"):     masterJSON,
		filepath.Join(dir, "cv.md"):           templateMD,
		filepath.Join(profiles, "sales.json"): salesJSON,
	}
	for path, content := range files {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}

	return dir, &generate.Generator{
		Master:      filepath.Join(dir, "master.json"),
		Template:    filepath.Join(dir, "cv.md"),
		Output:      filepath.Join(dir, "out", "cv.md"),
		ProfilesDir: profiles,
		Debounce:    20 * time.Millisecond,
	}
}

func TestGenerator_Run(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		profile string
		want    string
	}{
		"no profile": {
			want: "# Ada Lovelace\n[ada@example.com](mailto:ada@example.com)\n" +
				"- Analytical Engines\nmode=detailed profile=none\n",
		},
		"profile by name": {
			profile: "sales",
			want: "# Ada Lovelace\n[ada@example.com](mailto:ada@example.com)\n" +
				"- Analytical Engines\nmode=list-only profile=sales\n",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, g := writeFixtures(t)
			g.Profile = tc.profile

			res, err := g.Run(t.Context())
			require.NoError(t, err)

			got, err := os.ReadFile(g.Output)
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(got))
			assert.Equal(t, len(tc.want), res.Bytes)
			assert.Equal(t, tc.profile, res.ProfileID)
		})
	}
}

func TestGenerator_Run_Errors(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		modify func(g *generate.Generator)
		err    error
	}{
		"missing master": {
			modify: func(g *generate.Generator) { g.Master += ".missing" },
			err:    loader.ErrNotFound,
		},
		"unknown profile": {
			modify: func(g *generate.Generator) { g.Profile = "nope" },
			err:    loader.ErrNotFound,
		},
		"missing template": {
			modify: func(g *generate.Generator) { g.Template = filepath.Join(filepath.Dir(g.Template), "none.md") },
			err:    loader.ErrNotFound,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, g := writeFixtures(t)
			tc.modify(g)

			_, err := g.Run(t.Context())
			require.ErrorIs(t, err, tc.err)
			assert.NoFileExists(t, g.Output)
		})
	}
}

func TestGenerator_Watch(t *testing.T) {
	t.Parallel()

	dir, g := writeFixtures(t)

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	var (
		mu      sync.Mutex
		results []error
	)

	done := make(chan error, 1)
	go func() {
		done <- g.Watch(ctx, func(_ *generate.Result, err error) {
			mu.Lock()
			defer mu.Unlock()

			results = append(results, err)
		})
	}()

	count := func() int {
		mu.Lock()
		defer mu.Unlock()

		return len(results)
	}

	require.Eventually(t, func() bool { return count() == 1 }, 5*time.Second, 10*time.Millisecond)

	updated := []byte(`{"basics": {"name": "Grace Hopper"}}`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "master.json"), updated, 0o600))

	require.Eventually(t, func() bool {
		got, err := os.ReadFile(g.Output)
		return err == nil && string(got) == "# Grace Hopper\n\nmode=detailed profile=none\n"
	}, 5*time.Second, 20*time.Millisecond)

	// Broken input is reported, and watching continues.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "master.json"), []byte(`{`), 0o600))
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()

		return results[len(results)-1] != nil
	}, 5*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}
