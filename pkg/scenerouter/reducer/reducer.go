// Package reducer computes the next navigation state for an action.
//
// Reduce is pure and total: every action kind has a defined result for
// every reachable state. When an action finds nothing to act on, the
// input state is returned as-is, so callers can detect no-ops by pointer
// comparison.
package reducer

import (
	"github.com/BrandonKowalski/scenerouter/pkg/scenerouter/action"
	"github.com/BrandonKowalski/scenerouter/pkg/scenerouter/scene"
	"github.com/BrandonKowalski/scenerouter/pkg/scenerouter/state"
)

// Func is the reducer signature. Routers accept any Func; Reduce is the
// default.
type Func func(s *state.State, a action.Action) *state.State

// Reduce applies a to s and returns the resulting state.
func Reduce(s *state.State, a action.Action) *state.State {
	if s == nil {
		return nil
	}

	switch a.Kind {
	case action.Push:
		return push(s, a)
	case action.Pop, action.Back, action.BackAction:
		return pop(s, a.Props)
	case action.PopTo:
		return popTo(s, a.Key, a.Props)
	case action.Jump:
		return jump(s, a.Key)
	case action.PushOrPop:
		if next := popTo(s, a.Key, a.Props); next != s || holds(s, a.Key) {
			return next
		}
		return push(s, a)
	case action.Replace:
		return replace(s, a)
	case action.Reset:
		return reset(s, a)
	default:
		return refresh(s, a.Props)
	}
}

// CanPop reports whether a pop would change s.
func CanPop(s *state.State) bool {
	return s != nil && pop(s, nil) != s
}

// deepest returns the focus path of s and the position on it of the
// deepest state matching ok, or -1.
func deepest(s *state.State, ok func(*state.State) bool) ([]*state.State, int) {
	path := s.FocusPath()
	for i := len(path) - 1; i >= 0; i-- {
		if ok(path[i]) {
			return path, i
		}
	}
	return path, -1
}

// rebuild replaces path[i] with next and copies every ancestor up to the
// root. Siblings off the path are shared.
func rebuild(path []*state.State, i int, next *state.State) *state.State {
	for j := i - 1; j >= 0; j-- {
		next = path[j].WithChild(path[j].Index, next)
	}
	return next
}

func isStack(s *state.State) bool {
	return s.Kind == scene.KindStack
}

func holds(s *state.State, key string) bool {
	_, i := deepest(s, func(p *state.State) bool {
		return isStack(p) && p.IndexOf(key) >= 0
	})
	return i >= 0
}

func pop(s *state.State, props map[string]any) *state.State {
	path, i := deepest(s, func(p *state.State) bool {
		return isStack(p) && len(p.Children) > 1
	})
	if i < 0 {
		return s
	}

	stack := path[i]
	n := len(stack.Children) - 1
	next := rebuild(path, i, stack.WithChildren(stack.Children[:n:n], n-1))
	return refresh(next, props)
}

func popTo(s *state.State, key string, props map[string]any) *state.State {
	path, i := deepest(s, func(p *state.State) bool {
		return isStack(p) && p.IndexOf(key) >= 0
	})
	if i < 0 {
		return s
	}

	stack := path[i]
	at := stack.IndexOf(key)
	if at == len(stack.Children)-1 {
		// Already on top of this stack; anything deeper stays as it is.
		return s
	}

	next := rebuild(path, i, stack.WithChildren(stack.Children[:at+1:at+1], at))
	return refresh(next, props)
}

func jump(s *state.State, key string) *state.State {
	path, i := deepest(s, func(p *state.State) bool {
		return p.Kind == scene.KindTabs && p.IndexOf(key) >= 0
	})
	if i < 0 {
		return s
	}

	tabs := path[i]
	at := tabs.IndexOf(key)
	if at == tabs.Index {
		return s
	}

	return rebuild(path, i, tabs.WithIndex(at))
}

// target picks the stack that receives a push, replace or reset of key:
// the deepest stack on the focus path declaring key as a child, else the
// deepest stack. It also resolves the scene to instantiate.
func target(s *state.State, key string) ([]*state.State, int, *scene.Node) {
	path, i := deepest(s, func(p *state.State) bool {
		return isStack(p) && p.Scene != nil && p.Scene.Child(key) != nil
	})
	if i >= 0 {
		return path, i, path[i].Scene.Child(key)
	}

	path, i = deepest(s, isStack)
	if i < 0 || s.Scene == nil {
		return path, -1, nil
	}

	node := s.Scene.Find(key)
	if node == nil {
		return path, -1, nil
	}
	return path, i, node
}

func push(s *state.State, a action.Action) *state.State {
	path, i, node := target(s, a.Key)
	if i < 0 {
		return s
	}

	stack := path[i]
	entry := state.FromScene(node, stack.UniqueKey(node.Key), a.Props)

	children := make([]*state.State, len(stack.Children), len(stack.Children)+1)
	copy(children, stack.Children)
	children = append(children, entry)

	return rebuild(path, i, stack.WithChildren(children, len(children)-1))
}

func replace(s *state.State, a action.Action) *state.State {
	path, i, node := target(s, a.Key)
	if i < 0 {
		return s
	}

	stack := path[i]
	n := len(stack.Children) - 1
	kept := stack.WithChildren(stack.Children[:n:n], 0)
	entry := state.FromScene(node, kept.UniqueKey(node.Key), a.Props)

	children := append(kept.Children, entry)
	return rebuild(path, i, stack.WithChildren(children, n))
}

func reset(s *state.State, a action.Action) *state.State {
	path, i, node := target(s, a.Key)
	if i < 0 {
		return s
	}

	stack := path[i]
	entry := state.FromScene(node, node.Key, a.Props)
	return rebuild(path, i, stack.WithChildren([]*state.State{entry}, 0))
}

func refresh(s *state.State, props map[string]any) *state.State {
	if len(props) == 0 {
		return s
	}

	path := s.FocusPath()
	last := len(path) - 1
	return rebuild(path, last, path[last].WithProps(props))
}
