// Package scene normalizes scene declarations into the canonical tree the
// navigation core reduces over.
//
// A declaration is whatever the host produced from its markup, builder
// API or config file, reduced to the Declaration shape. Build validates
// it and returns a tree of Nodes with unique sibling keys:
//
//	root, err := scene.Build(scene.GroupStack,
//	    scene.Declaration{Key: "Home"},
//	    scene.Declaration{Key: "Detail"},
//	)
//	// root is the synthetic "__root" stack holding Home and Detail.
package scene

import (
	"fmt"
	"strings"
)

// Kind determines how the reducer treats a node's children.
type Kind int

const (
	KindLeaf  Kind = iota // A scene with no children
	KindStack             // Children behave as a push/pop history
	KindTabs              // Children are switched between with jump
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "scene"
	case KindStack:
		return "stack"
	case KindTabs:
		return "tabs"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// IsContainer reports whether nodes of this kind hold children.
func (k Kind) IsContainer() bool {
	return k == KindStack || k == KindTabs
}

// ParseKind parses an explicit kind name as written in a declaration.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scene", "leaf":
		return KindLeaf, nil
	case "stack":
		return KindStack, nil
	case "tabs", "tab":
		return KindTabs, nil
	default:
		return KindLeaf, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Grouping selects the kind given to containers that declare children
// without naming a kind.
type Grouping int

const (
	GroupStack Grouping = iota
	GroupTabs
)

func (g Grouping) String() string {
	if g == GroupTabs {
		return "tabs"
	}
	return "stack"
}

func (g Grouping) kind() Kind {
	if g == GroupTabs {
		return KindTabs
	}
	return KindStack
}

// ParseGrouping parses a grouping name. The empty string means GroupStack.
func ParseGrouping(s string) (Grouping, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "stack":
		return GroupStack, nil
	case "tabs", "tab":
		return GroupTabs, nil
	default:
		return GroupStack, fmt.Errorf("%w: grouping %q", ErrUnknownKind, s)
	}
}

// Declaration is a scene as declared by the host, before normalization.
type Declaration struct {
	Key      string         `toml:"key" yaml:"key"`
	Kind     string         `toml:"kind,omitempty" yaml:"kind,omitempty"`       // "scene", "stack", "tabs" or empty to infer
	Initial  bool           `toml:"initial,omitempty" yaml:"initial,omitempty"` // Focused first within its container
	Props    map[string]any `toml:"props,omitempty" yaml:"props,omitempty"`     // Static props handed to the renderer
	Children []Declaration  `toml:"children,omitempty" yaml:"children,omitempty"`
}

// File is the on-disk shape of a declaration file.
type File struct {
	Grouping string        `toml:"grouping,omitempty" yaml:"grouping,omitempty"`
	Scenes   []Declaration `toml:"scenes" yaml:"scenes"`
}

// Node is a normalized scene.
type Node struct {
	Key      string         // Unique among siblings
	Path     string         // Keys from the root joined by "/", unique in the tree
	Kind     Kind           // Leaf, stack or tabs
	Initial  int            // Index of the child focused when the container is first shown
	Children []*Node        // Empty for leaves
	Props    map[string]any // Static props, passed through untouched
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return n.Kind == KindLeaf
}

// ChildIndex returns the position of the direct child with the given key,
// or -1.
func (n *Node) ChildIndex(key string) int {
	for i, c := range n.Children {
		if c.Key == key {
			return i
		}
	}
	return -1
}

// Child returns the direct child with the given key, or nil.
func (n *Node) Child(key string) *Node {
	if i := n.ChildIndex(key); i >= 0 {
		return n.Children[i]
	}
	return nil
}

// Find returns the first node with the given key in a depth-first,
// pre-order walk starting at n itself.
func (n *Node) Find(key string) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if c.Key == key {
			found = c
			return false
		}
		return true
	})
	return found
}

// Walk visits n and its descendants in pre-order until fn returns false.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}
