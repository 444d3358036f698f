package bundle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/plistkit/pkg/types"
)

const defaultProfile = `
targets:
  - file: Info.plist
    names: {product: "Product Version", build: "Build Version"}
    aliases:
      - {product: ProductVersion, build: BuildVersion}
  - label: Manifest.plist/Lockdown
    file: Manifest.plist
    key_path: [Lockdown]
    names: {product: ProductVersion, build: BuildVersion}
    read_order:
      - {product: "Product Version", build: "Build Version"}
      - {product: ProductVersion, build: BuildVersion}
`

func TestParseProfile_MatchesDefaults(t *testing.T) {
	targets, err := ParseProfile([]byte(defaultProfile))
	require.NoError(t, err)

	want := DefaultTargets()
	want[0].Label = ""
	assert.Equal(t, want, targets)
}

func TestParseProfile_Errors(t *testing.T) {
	cases := map[string]string{
		"empty":         "targets: []\n",
		"no file":       "targets:\n  - names: {product: a, build: b}\n",
		"no names":      "targets:\n  - file: Info.plist\n",
		"empty segment": "targets:\n  - file: M.plist\n    key_path: [\"\"]\n    names: {product: a, build: b}\n",
		"unknown field": "targets:\n  - file: Info.plist\n    nmes: {}\n",
		"not yaml":      "targets: [\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseProfile([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadProfile_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(defaultProfile), 0o644))

	targets, err := LoadProfile(path)
	require.NoError(t, err)
	require.Len(t, targets, 2)
	assert.Equal(t, []string{"Lockdown"}, targets[1].KeyPath)
	assert.Equal(t, types.LockdownKeyNames, targets[1].Names)
}

func TestLoadProfile_Missing(t *testing.T) {
	_, err := LoadProfile(filepath.Join(t.TempDir(), "none.yaml"))
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestExpandTilde(t *testing.T) {
	orig := userHomeDir
	userHomeDir = func() (string, error) { return "/home/tester", nil }
	t.Cleanup(func() { userHomeDir = orig })

	got, err := expandTilde("~/Backups/x")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/tester", "Backups/x"), got)

	got, err = expandTilde("~")
	require.NoError(t, err)
	assert.Equal(t, "/home/tester", got)

	got, err = expandTilde("~other/x")
	require.NoError(t, err)
	assert.Equal(t, "~other/x", got)

	got, err = expandTilde("/abs")
	require.NoError(t, err)
	assert.Equal(t, "/abs", got)
}
