// Package state holds the navigation state the reducer consumes and
// produces.
//
// A State mirrors the scene tree but carries runtime position and history
// instead of static configuration. States are immutable values: every
// change copies the nodes on the path from the changed node to the root
// and shares everything else, so an unchanged result is the same pointer.
package state

import (
	"fmt"
	"maps"
	"reflect"
	"strings"

	"github.com/BrandonKowalski/scenerouter/pkg/scenerouter/scene"
)

// State is one node of the navigation state tree.
type State struct {
	Key      string         // Instance key, unique among siblings
	SceneKey string         // Key of the scene this entry was created from
	Kind     scene.Kind     // Copied from the scene
	Index    int            // Focused child; meaningless for leaves
	Children []*State       // Stack history or tab set; empty for leaves
	RouterID string         // Set on the root of a router's state
	Props    map[string]any // Runtime props delivered by actions
	Scene    *scene.Node    // Static configuration for renderers
}

// New builds the initial navigation state for a scene tree: stacks hold
// their initial child only, tab containers hold every child, and focus
// rests on each container's initial child.
func New(root *scene.Node, routerID string) *State {
	s := FromScene(root, root.Key, nil)
	s.RouterID = routerID
	return s
}

// FromScene builds a fresh state subtree for node under the given instance
// key. props become the subtree root's runtime props.
func FromScene(node *scene.Node, key string, props map[string]any) *State {
	s := &State{
		Key:      key,
		SceneKey: node.Key,
		Kind:     node.Kind,
		Props:    maps.Clone(props),
		Scene:    node,
	}

	switch node.Kind {
	case scene.KindStack:
		initial := node.Children[node.Initial]
		s.Children = []*State{FromScene(initial, initial.Key, nil)}
	case scene.KindTabs:
		s.Children = make([]*State, len(node.Children))
		for i, c := range node.Children {
			s.Children[i] = FromScene(c, c.Key, nil)
		}
		s.Index = node.Initial
	}

	return s
}

// IsLeaf reports whether s has no children.
func (s *State) IsLeaf() bool {
	return len(s.Children) == 0
}

// Active returns the focused child, or nil for a leaf.
func (s *State) Active() *State {
	if s.IsLeaf() {
		return nil
	}
	return s.Children[s.Index]
}

// FocusPath returns the states from s down to the focused leaf.
func (s *State) FocusPath() []*State {
	path := []*State{s}
	for cur := s; !cur.IsLeaf(); {
		cur = cur.Active()
		path = append(path, cur)
	}
	return path
}

// Focused returns the focused leaf.
func (s *State) Focused() *State {
	path := s.FocusPath()
	return path[len(path)-1]
}

// FocusKeys returns the instance keys along the focus path.
func (s *State) FocusKeys() []string {
	path := s.FocusPath()
	keys := make([]string, len(path))
	for i, p := range path {
		keys[i] = p.Key
	}
	return keys
}

// History returns the scene keys of s's children in order.
func (s *State) History() []string {
	keys := make([]string, len(s.Children))
	for i, c := range s.Children {
		keys[i] = c.SceneKey
	}
	return keys
}

// IndexOf returns the position of the most recent child created from the
// named scene (or carrying it as instance key), or -1.
func (s *State) IndexOf(key string) int {
	for i := len(s.Children) - 1; i >= 0; i-- {
		if c := s.Children[i]; c.SceneKey == key || c.Key == key {
			return i
		}
	}
	return -1
}

// Find returns the first state in s, depth-first, whose instance or scene
// key matches key.
func (s *State) Find(key string) *State {
	if s.Key == key || s.SceneKey == key {
		return s
	}
	for _, c := range s.Children {
		if found := c.Find(key); found != nil {
			return found
		}
	}
	return nil
}

// UniqueKey returns an instance key for a new child created from sceneKey
// that does not collide with any current child.
func (s *State) UniqueKey(sceneKey string) string {
	taken := make(map[string]struct{}, len(s.Children))
	for _, c := range s.Children {
		taken[c.Key] = struct{}{}
	}
	if _, ok := taken[sceneKey]; !ok {
		return sceneKey
	}
	for n := len(s.Children); ; n++ {
		key := fmt.Sprintf("%s_%d", sceneKey, n)
		if _, ok := taken[key]; !ok {
			return key
		}
	}
}

// Clone returns a shallow copy of s with its own Children slice.
func (s *State) Clone() *State {
	c := *s
	c.Children = append([]*State(nil), s.Children...)
	return &c
}

// WithChildren returns a copy of s holding children with focus on index.
func (s *State) WithChildren(children []*State, index int) *State {
	c := *s
	c.Children = children
	c.Index = index
	return &c
}

// WithChild returns a copy of s with the child at i replaced.
func (s *State) WithChild(i int, child *State) *State {
	c := s.Clone()
	c.Children[i] = child
	return c
}

// WithIndex returns a copy of s focused on child i.
func (s *State) WithIndex(i int) *State {
	c := *s
	c.Index = i
	return &c
}

// WithProps returns a copy of s whose props are the current ones overlaid
// with props.
func (s *State) WithProps(props map[string]any) *State {
	c := *s
	merged := make(map[string]any, len(s.Props)+len(props))
	maps.Copy(merged, s.Props)
	maps.Copy(merged, props)
	c.Props = merged
	return &c
}

// Equal reports whether s and o are structurally equal: same keys, kinds,
// focus, props and children, regardless of pointer identity.
func (s *State) Equal(o *State) bool {
	if s == o {
		return true
	}
	if s == nil || o == nil {
		return false
	}
	if s.Key != o.Key || s.SceneKey != o.SceneKey || s.Kind != o.Kind ||
		s.RouterID != o.RouterID || s.Scene != o.Scene || len(s.Children) != len(o.Children) {
		return false
	}
	if !s.IsLeaf() && s.Index != o.Index {
		return false
	}
	if len(s.Props) != 0 || len(o.Props) != 0 {
		if !reflect.DeepEqual(s.Props, o.Props) {
			return false
		}
	}
	for i := range s.Children {
		if !s.Children[i].Equal(o.Children[i]) {
			return false
		}
	}
	return true
}

// FocusEqual reports whether s and o focus the same path: identical keys
// and indices from the root to the leaf. Props are ignored.
func (s *State) FocusEqual(o *State) bool {
	a, b := s.FocusPath(), o.FocusPath()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Key != b[i].Key || a[i].Index != b[i].Index || len(a[i].Children) != len(b[i].Children) {
			return false
		}
	}
	return true
}

// String renders the focus path, e.g. "__root > Home".
func (s *State) String() string {
	return strings.Join(s.FocusKeys(), " > ")
}
