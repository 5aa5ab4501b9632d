package scene

import (
	"fmt"
	"maps"
	"strings"

	"github.com/BrandonKowalski/scenerouter/pkg/scenerouter/constants"
	"golang.org/x/text/unicode/norm"
)

// NormalizeKey trims surrounding whitespace and converts the key to NFC so
// that visually identical keys compare equal.
func NormalizeKey(key string) string {
	return norm.NFC.String(strings.TrimSpace(key))
}

// Build normalizes declarations into a canonical scene tree.
//
// A single container declaration becomes the root as-is. Anything else (a
// sequence of declarations, or a lone leaf) is wrapped in a synthetic
// container keyed "__root" so the reducer always works on a rooted tree.
// mode picks the kind of containers that declare children but no kind.
//
// The declarations are never modified; props maps are copied.
func Build(mode Grouping, decls ...Declaration) (*Node, error) {
	if len(decls) == 0 {
		return nil, ErrNoScenes
	}

	var root Declaration
	if len(decls) == 1 && declaresContainer(decls[0]) {
		root = decls[0]
	} else {
		root = Declaration{Key: constants.RootKey, Children: decls}
	}

	return build(root, mode, "")
}

func declaresContainer(d Declaration) bool {
	if d.Kind == "" {
		return len(d.Children) > 0
	}
	k, err := ParseKind(d.Kind)
	return err == nil && k.IsContainer()
}

func build(d Declaration, mode Grouping, parent string) (*Node, error) {
	key := NormalizeKey(d.Key)
	if key == "" {
		return nil, fmt.Errorf("scene: under %q: %w", parent, ErrMissingKey)
	}

	path := key
	if parent != "" {
		path = parent + constants.PathSeparator + key
	}

	kind, err := resolveKind(d, mode)
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", path, err)
	}

	n := &Node{
		Key:   key,
		Path:  path,
		Kind:  kind,
		Props: maps.Clone(d.Props),
	}

	if kind == KindLeaf {
		if len(d.Children) > 0 {
			return nil, fmt.Errorf("scene %q: %w", path, ErrLeafChildren)
		}
		return n, nil
	}

	if len(d.Children) == 0 {
		return nil, fmt.Errorf("scene %q: %w", path, ErrEmptyContainer)
	}

	seen := make(map[string]struct{}, len(d.Children))
	initial := -1
	n.Children = make([]*Node, 0, len(d.Children))

	for i, cd := range d.Children {
		ck := NormalizeKey(cd.Key)
		if _, dup := seen[ck]; dup && ck != "" {
			return nil, &DuplicateKeyError{Parent: path, Key: ck}
		}
		seen[ck] = struct{}{}

		child, err := build(cd, mode, path)
		if err != nil {
			return nil, err
		}

		if cd.Initial {
			if initial >= 0 {
				return nil, fmt.Errorf("scene %q: %w", path, ErrMultipleInitial)
			}
			initial = i
		}

		n.Children = append(n.Children, child)
	}

	if initial >= 0 {
		n.Initial = initial
	}

	return n, nil
}

func resolveKind(d Declaration, mode Grouping) (Kind, error) {
	if d.Kind != "" {
		return ParseKind(d.Kind)
	}
	if len(d.Children) > 0 {
		return mode.kind(), nil
	}
	return KindLeaf, nil
}
