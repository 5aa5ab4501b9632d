package scene

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildWrapsSequenceInRoot(t *testing.T) {
	root, err := Build(GroupStack,
		Declaration{Key: "Home"},
		Declaration{Key: "Detail"},
	)
	require.NoError(t, err)
	require.Equal(t, "__root", root.Key)
	require.Equal(t, KindStack, root.Kind)
	require.Len(t, root.Children, 2)
	require.Equal(t, "__root/Home", root.Children[0].Path)
	require.True(t, root.Children[1].IsLeaf())
}

func TestBuildWrapsSingleLeaf(t *testing.T) {
	root, err := Build(GroupTabs, Declaration{Key: "Only"})
	require.NoError(t, err)
	require.Equal(t, "__root", root.Key)
	require.Equal(t, KindTabs, root.Kind)
	require.Equal(t, "Only", root.Children[0].Key)
}

func TestBuildKeepsSingleContainer(t *testing.T) {
	root, err := Build(GroupStack, Declaration{
		Key:  "app",
		Kind: "tabs",
		Children: []Declaration{
			{Key: "Feed"},
			{Key: "Profile", Initial: true},
		},
	})
	require.NoError(t, err)
	require.Equal(t, "app", root.Key)
	require.Equal(t, KindTabs, root.Kind)
	require.Equal(t, 1, root.Initial)
}

func TestBuildGroupingAppliesToImplicitContainers(t *testing.T) {
	decl := Declaration{
		Key: "app",
		Children: []Declaration{
			{Key: "inner", Children: []Declaration{{Key: "A"}}},
			{Key: "explicit", Kind: "stack", Children: []Declaration{{Key: "B"}}},
		},
	}

	root, err := Build(GroupTabs, decl)
	require.NoError(t, err)
	require.Equal(t, KindTabs, root.Kind)
	require.Equal(t, KindTabs, root.Child("inner").Kind)
	require.Equal(t, KindStack, root.Child("explicit").Kind)

	root, err = Build(GroupStack, decl)
	require.NoError(t, err)
	require.Equal(t, KindStack, root.Child("inner").Kind)
}

func TestBuildDuplicateSiblingKey(t *testing.T) {
	_, err := Build(GroupStack,
		Declaration{Key: "Home"},
		Declaration{Key: " Home "},
	)
	require.Error(t, err)
	require.True(t, IsDuplicateKey(err))
	require.True(t, errors.Is(err, ErrDuplicateKey))

	var dup *DuplicateKeyError
	require.True(t, errors.As(err, &dup))
	require.Equal(t, "__root", dup.Parent)
	require.Equal(t, "Home", dup.Key)
}

func TestBuildDuplicateAfterNormalization(t *testing.T) {
	// "é" precomposed vs. "e" + combining acute accent.
	_, err := Build(GroupStack,
		Declaration{Key: "caf\u00e9"},
		Declaration{Key: "cafe\u0301"},
	)
	require.ErrorIs(t, err, ErrDuplicateKey)
}

func TestBuildNestedDuplicate(t *testing.T) {
	_, err := Build(GroupStack, Declaration{
		Key: "app",
		Children: []Declaration{
			{Key: "tabs", Kind: "tabs", Children: []Declaration{{Key: "A"}, {Key: "A"}}},
		},
	})
	var dup *DuplicateKeyError
	require.ErrorAs(t, err, &dup)
	require.Equal(t, "app/tabs", dup.Parent)
}

func TestBuildSameKeyInDifferentSubtrees(t *testing.T) {
	root, err := Build(GroupStack,
		Declaration{Key: "left", Children: []Declaration{{Key: "Item"}}},
		Declaration{Key: "right", Children: []Declaration{{Key: "Item"}}},
	)
	require.NoError(t, err)

	paths := map[string]bool{}
	root.Walk(func(n *Node) bool {
		require.False(t, paths[n.Path], "path %q repeated", n.Path)
		paths[n.Path] = true
		return true
	})
	require.True(t, paths["__root/left/Item"])
	require.True(t, paths["__root/right/Item"])
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name  string
		decls []Declaration
		want  error
	}{
		{"no scenes", nil, ErrNoScenes},
		{"missing key", []Declaration{{Key: "A"}, {Key: "  "}}, ErrMissingKey},
		{"unknown kind", []Declaration{{Key: "A", Kind: "carousel"}}, ErrUnknownKind},
		{"empty container", []Declaration{{Key: "A", Kind: "stack"}}, ErrEmptyContainer},
		{"leaf with children", []Declaration{{Key: "A", Kind: "scene", Children: []Declaration{{Key: "B"}}}, {Key: "C"}}, ErrLeafChildren},
		{"two initial", []Declaration{{Key: "A", Initial: true}, {Key: "B", Initial: true}}, ErrMultipleInitial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(GroupStack, tt.decls...)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBuildDoesNotMutateDeclaration(t *testing.T) {
	props := map[string]any{"title": "Home"}
	decls := []Declaration{{Key: " Home ", Props: props}}

	root, err := Build(GroupStack, decls...)
	require.NoError(t, err)

	root.Children[0].Props["title"] = "changed"
	require.Equal(t, " Home ", decls[0].Key)
	require.Equal(t, "Home", props["title"])
}

func TestNodeFind(t *testing.T) {
	root, err := Build(GroupStack,
		Declaration{Key: "Home"},
		Declaration{Key: "main", Kind: "tabs", Children: []Declaration{{Key: "Feed"}, {Key: "Inbox"}}},
	)
	require.NoError(t, err)

	require.Same(t, root, root.Find("__root"))
	require.Equal(t, "__root/main/Inbox", root.Find("Inbox").Path)
	require.Nil(t, root.Find("Missing"))
	require.Equal(t, 1, root.ChildIndex("main"))
	require.Nil(t, root.Child("Feed"))
}

func TestParseGrouping(t *testing.T) {
	g, err := ParseGrouping("")
	require.NoError(t, err)
	require.Equal(t, GroupStack, g)

	g, err = ParseGrouping("Tabs")
	require.NoError(t, err)
	require.Equal(t, GroupTabs, g)

	_, err = ParseGrouping("grid")
	require.ErrorIs(t, err, ErrUnknownKind)
}
