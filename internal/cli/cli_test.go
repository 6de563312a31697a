package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/cvgen/internal/cli"
)

const masterJSON = `{
  "basics": {
    "name": "Ada Lovelace",
    "email": "ada@example.com",
    "profiles": [{"network": "LinkedIn", "url": "https://linkedin.com/in/ada"}]
  },
  "work": [
    {"company": "Analytical Engines", "title": "Engineer"},
    {"company": "Old Mill", "title": "Clerk", "isEarlierExperience": true}
  ]
}
`

type fixture struct {
	dir         string
	master      string
	profilesDir string
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	dir := t.TempDir()
	f := fixture{
		dir:         dir,
		master:      filepath.Join(dir, "master.json"),
		profilesDir: filepath.Join(dir, "profiles"),
	}
	require.NoError(t, os.WriteFile(f.master, []byte(masterJSON), 0o600))

	return f
}

func execute(t *testing.T, f fixture, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer

	cmd := cli.NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append(args, "--log-level", "error", "--profiles-dir", f.profilesDir))

	err := cmd.ExecuteContext(t.Context())

	return out.String(), err
}

func TestProfilesCmd(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	out, err := execute(t, f, "profiles")
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = execute(t, f, "profiles", "--init")
	require.NoError(t, err)

	for _, id := range []string{"balanced", "sales", "operations", "technical", "leadership"} {
		assert.Contains(t, out, id)
		assert.FileExists(t, filepath.Join(f.profilesDir, id+".json"))
	}

	assert.Contains(t, out, "DESCRIPTION")
}

func TestGenerateCmd(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		args []string
		want string
	}{
		"default profile": {
			want: "Ada Lovelace balanced detailed\n",
		},
		"explicit profile": {
			args: []string{"--profile", "sales"},
			want: "Ada Lovelace sales list-only\n",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)

			_, err := execute(t, f, "profiles", "--init")
			require.NoError(t, err)

			tmpl := filepath.Join(f.dir, "cv.txt")
			output := filepath.Join(f.dir, "out", "cv.txt")
			require.NoError(t, os.WriteFile(tmpl,
				[]byte("{{.name}} {{.profile_id}} {{.earlier_experience_mode}}\n"), 0o600))

			args := append([]string{"generate", "-m", f.master, "-t", tmpl, "-o", output}, tc.args...)
			_, err = execute(t, f, args...)
			require.NoError(t, err)

			got, err := os.ReadFile(output)
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(got))
		})
	}
}

func TestGenerateCmd_Errors(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		args       []string
		wantErr    string
		withMaster bool
	}{
		"missing flags": {
			args:    []string{"generate", "-t", "cv.md"},
			wantErr: `required flag not set: "master", "output"`,
		},
		"unsupported template": {
			args:       []string{"generate", "-t", "cv.pdf", "-o", "cv.out"},
			wantErr:    "unsupported template",
			withMaster: true,
		},
		"unknown profile": {
			args:       []string{"context", "-p", "nope"},
			wantErr:    `profile "nope"`,
			withMaster: true,
		},
		"bad format": {
			args:       []string{"context", "--format", "xml"},
			wantErr:    "invalid argument",
			withMaster: true,
		},
		"diff needs two profiles": {
			args:       []string{"diff", "-p", "sales"},
			wantErr:    "--profile must be given twice",
			withMaster: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)

			args := tc.args
			if tc.withMaster {
				args = append(args, "-m", f.master)
			}

			_, err := execute(t, f, args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestContextCmd(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		format string
		want   []string
	}{
		"yaml": {
			format: "yaml",
			want: []string{
				"name: Ada Lovelace\n",
				"target: mailto:ada@example.com",
				"text: ada@example.com",
				"target: https://linkedin.com/in/ada",
				"earlier_experience_mode: detailed",
			},
		},
		"json": {
			format: "json",
			want: []string{
				`"name": "Ada Lovelace"`,
				`"target": "mailto:ada@example.com"`,
				`"company": "Old Mill"`,
			},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)

			out, err := execute(t, f, "context", "-m", f.master, "--format", tc.format)
			require.NoError(t, err)

			for _, want := range tc.want {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestDiffCmd(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	_, err := execute(t, f, "profiles", "--init")
	require.NoError(t, err)

	out, err := execute(t, f, "diff", "-m", f.master, "-p", "balanced", "-p", "sales")
	require.NoError(t, err)

	assert.Contains(t, out, "--- balanced")
	assert.Contains(t, out, "+++ sales")
	assert.Contains(t, out, "-earlier_experience_mode: detailed")
	assert.Contains(t, out, "+earlier_experience_mode: list-only")
	assert.Contains(t, out, "+profile_id: sales")

	out, err = execute(t, f, "diff", "-m", f.master, "-p", "sales", "-p", "technical")
	require.NoError(t, err)
	assert.NotContains(t, out, "-earlier_experience_mode")
	assert.NotContains(t, out, "+earlier_experience_mode")
	assert.Contains(t, out, "+profile_id: technical")
}
