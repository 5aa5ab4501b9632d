package router

import "github.com/BrandonKowalski/scenerouter/pkg/scenerouter/action"

// Push shows the scene key on top of the active stack.
func (r *Router) Push(key string, props map[string]any) {
	r.Dispatch(action.NewPush(key, props))
}

// Pop goes back one entry. With nothing left to pop, the exit hook runs.
func (r *Router) Pop() {
	r.Dispatch(action.NewPop())
}

// PopTo goes back until the scene key is focused.
func (r *Router) PopTo(key string) {
	r.Dispatch(action.NewPopTo(key))
}

// Jump switches to the tab key.
func (r *Router) Jump(key string) {
	r.Dispatch(action.NewJump(key))
}

// PushOrPop pops back to key if it is in history, otherwise pushes it.
func (r *Router) PushOrPop(key string, props map[string]any) {
	r.Dispatch(action.NewPushOrPop(key, props))
}

// Replace swaps the focused stack entry for key.
func (r *Router) Replace(key string, props map[string]any) {
	r.Dispatch(action.NewReplace(key, props))
}

// Reset clears the active stack down to key.
func (r *Router) Reset(key string, props map[string]any) {
	r.Dispatch(action.NewReset(key, props))
}

// Refresh re-delivers the focused scene with props merged in.
func (r *Router) Refresh(props map[string]any) {
	r.Dispatch(action.NewRefresh(props))
}

// Back is Pop issued on behalf of back navigation.
func (r *Router) Back() {
	r.Dispatch(action.NewBack())
}
