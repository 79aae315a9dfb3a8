package ui

import "github.com/jtbby/PickEm/internal/route"

// History is the navigation stack behind Esc-back. The current route is not
// on the stack; Navigate pushes the route being left, Back pops the route to
// return to. The bottom of every history is the home route.
type History struct {
	stack []route.Route
}

// Push records a route that is being navigated away from.
func (h *History) Push(r route.Route) {
	h.stack = append(h.stack, r)
}

// Pop removes and returns the most recently left route.
// The second return is false when the history is empty.
func (h *History) Pop() (route.Route, bool) {
	if len(h.stack) == 0 {
		return route.Route{}, false
	}
	top := h.stack[len(h.stack)-1]
	h.stack = h.stack[:len(h.stack)-1]
	return top, true
}

// Peek returns the route Back would return to without removing it.
func (h *History) Peek() (route.Route, bool) {
	if len(h.stack) == 0 {
		return route.Route{}, false
	}
	return h.stack[len(h.stack)-1], true
}

// Len returns the number of routes in the history.
func (h *History) Len() int {
	return len(h.stack)
}
