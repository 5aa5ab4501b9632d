package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var appScenes = filepath.Join("..", "..", "pkg", "scenerouter", "testdata", "app.toml")

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestTreeCommand(t *testing.T) {
	out, err := execute(t, "tree", appScenes)
	require.NoError(t, err)
	require.Equal(t, `__root (stack)
  Home
  Detail
  main (tabs)
    Feed (stack)
      List
      Post
    Profile
`, out)
}

func TestReplayCommand(t *testing.T) {
	out, err := execute(t, "replay", appScenes, "push:Detail", "push:main", "jump:Feed", "pop", "pop", "pop")
	require.NoError(t, err)
	require.Equal(t, `start: __root > Home
push:Detail: __root > Detail
push:main: __root > main > Profile
jump:Feed: __root > main > Feed > List
pop: __root > Detail
pop: __root > Home
pop: exit
`, out)
}

func TestReplayUnknownKindRefreshes(t *testing.T) {
	out, err := execute(t, "replay", appScenes, "teleport:Detail")
	require.NoError(t, err)
	require.Contains(t, out, "refresh:Detail: __root > Home")
}

func TestMissingFile(t *testing.T) {
	_, err := execute(t, "tree", filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestReplayNeedsActions(t *testing.T) {
	_, err := execute(t, "replay", appScenes)
	require.Error(t, err)
}
