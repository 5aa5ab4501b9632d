// Package action defines the closed set of navigation actions.
//
// Actions are plain values: a Kind, an optional target scene key, and a
// payload of props that reaches the focused scene when it renders. They
// carry no behavior; the reducer decides what each kind does.
package action

import (
	"fmt"
	"maps"
	"strings"
)

// Kind identifies a navigation action. The set is closed; any value outside
// it is handled like Refresh.
type Kind int

const (
	Refresh    Kind = iota // Merge props into the focused scene, no structural change
	Push                   // Append a scene to the active stack and focus it
	Pop                    // Drop the focused entry of the active stack
	PopTo                  // Pop until the named scene is focused
	Jump                   // Switch tabs to the named sibling
	PushOrPop              // PopTo if the scene is in history, otherwise Push
	Replace                // Substitute the focused stack entry
	Reset                  // Rebuild the active stack's history to just the named scene
	Back                   // Pop, issued by back navigation
	BackAction             // Pop, issued by back navigation
)

var kindNames = map[Kind]string{
	Refresh:    "refresh",
	Push:       "push",
	Pop:        "pop",
	PopTo:      "pop_to",
	Jump:       "jump",
	PushOrPop:  "push_or_pop",
	Replace:    "replace",
	Reset:      "reset",
	Back:       "back",
	BackAction: "back_action",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsKnown reports whether k is one of the declared kinds.
func (k Kind) IsKnown() bool {
	_, ok := kindNames[k]
	return ok
}

// IsPop reports whether k is a pop-class action (pop, back, back_action).
func (k Kind) IsPop() bool {
	return k == Pop || k == Back || k == BackAction
}

// IsPush reports whether k is a push-class action.
func (k Kind) IsPush() bool {
	return k == Push
}

// ParseKind maps an action name to its Kind. Names are case-insensitive
// and accept camelCase ("popTo") as well as snake_case ("pop_to").
// Unknown names map to Refresh and ok is false.
func ParseKind(name string) (kind Kind, ok bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	for k, kn := range kindNames {
		if n == kn || n == strings.ReplaceAll(kn, "_", "") {
			return k, true
		}
	}
	return Refresh, false
}

// MarshalText encodes k by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name; unknown names become Refresh.
func (k *Kind) UnmarshalText(text []byte) error {
	*k, _ = ParseKind(string(text))
	return nil
}

// Action is a request to transform the navigation state.
type Action struct {
	Kind  Kind
	Key   string         // Target scene key, where the kind takes one
	Props map[string]any // Payload merged into the focused scene's props
}

func (a Action) String() string {
	if a.Key == "" {
		return a.Kind.String()
	}
	return a.Kind.String() + ":" + a.Key
}

// Parse reads the "kind[:key]" shorthand used by the CLI, e.g. "push:Detail".
func Parse(s string) Action {
	name, key, _ := strings.Cut(s, ":")
	kind, _ := ParseKind(name)
	return Action{Kind: kind, Key: strings.TrimSpace(key)}
}

func newAction(kind Kind, key string, props map[string]any) Action {
	return Action{Kind: kind, Key: key, Props: maps.Clone(props)}
}

// NewPush creates a push of the scene key carrying props.
func NewPush(key string, props map[string]any) Action {
	return newAction(Push, key, props)
}

// NewPop creates a pop of the active stack.
func NewPop() Action {
	return Action{Kind: Pop}
}

// NewPopTo creates a pop back to the scene key.
func NewPopTo(key string) Action {
	return Action{Kind: PopTo, Key: key}
}

// NewJump creates a switch to the tab key.
func NewJump(key string) Action {
	return Action{Kind: Jump, Key: key}
}

// NewPushOrPop creates a pop back to key when it is in history, or a
// push of it otherwise.
func NewPushOrPop(key string, props map[string]any) Action {
	return newAction(PushOrPop, key, props)
}

// NewReplace creates a replacement of the focused stack entry by key.
func NewReplace(key string, props map[string]any) Action {
	return newAction(Replace, key, props)
}

// NewReset creates a reset of the active stack to just key.
func NewReset(key string, props map[string]any) Action {
	return newAction(Reset, key, props)
}

// NewRefresh creates a refresh merging props into the focused scene.
func NewRefresh(props map[string]any) Action {
	return newAction(Refresh, "", props)
}

// NewBack creates the pop issued by back navigation.
func NewBack() Action {
	return Action{Kind: Back}
}
