package scenerouter

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/BrandonKowalski/scenerouter/pkg/scenerouter/scene"
	"github.com/stretchr/testify/require"
)

func shape(n *scene.Node) []string {
	var out []string
	n.Walk(func(c *scene.Node) bool {
		out = append(out, c.Path+" "+c.Kind.String())
		return true
	})
	return out
}

func TestLoadScenesTOMLAndYAMLAgree(t *testing.T) {
	fromTOML, err := LoadScenes(filepath.Join("testdata", "app.toml"))
	require.NoError(t, err)

	fromYAML, err := LoadScenes(filepath.Join("testdata", "app.yaml"))
	require.NoError(t, err)

	require.Equal(t, shape(fromTOML), shape(fromYAML))
	require.Equal(t, []string{
		"__root stack",
		"__root/Home scene",
		"__root/Detail scene",
		"__root/main tabs",
		"__root/main/Feed stack",
		"__root/main/Feed/List scene",
		"__root/main/Feed/Post scene",
		"__root/main/Profile scene",
	}, shape(fromTOML))

	for _, root := range []*scene.Node{fromTOML, fromYAML} {
		require.Equal(t, "Home", root.Child("Home").Props["title"])
		require.Equal(t, 1, root.Child("main").Initial)
		require.NotNil(t, root.Find("Post").Props["nav"])
	}
}

func TestLoadScenesErrors(t *testing.T) {
	_, err := LoadScenes(filepath.Join("testdata", "app.json"))
	require.True(t, IsLoadError(err))
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = LoadScenes(filepath.Join("testdata", "missing.toml"))
	require.True(t, IsLoadError(err))
	require.True(t, errors.Is(err, fs.ErrNotExist))

	_, err = LoadScenes(filepath.Join("testdata", "typo.toml"))
	require.True(t, IsLoadError(err))
	require.Contains(t, err.Error(), "kidn")

	_, err = LoadScenes(filepath.Join("testdata", "duplicate.yaml"))
	require.False(t, IsLoadError(err))
	require.True(t, scene.IsDuplicateKey(err))
}

func TestDecodeScenesYAMLRejectsUnknownFields(t *testing.T) {
	_, err := DecodeScenes([]byte("scenes:\n  - key: Home\n    colour: red\n"), FormatYAML)
	require.Error(t, err)

	_, err = DecodeScenes(nil, Format("ini"))
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestFormatFor(t *testing.T) {
	f, err := FormatFor("scenes.YML")
	require.NoError(t, err)
	require.Equal(t, FormatYAML, f)

	f, err = FormatFor("/etc/app/scenes.toml")
	require.NoError(t, err)
	require.Equal(t, FormatTOML, f)
}
