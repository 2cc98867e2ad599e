// Package registry owns the long-lived host callbacks of the process.
//
// A pointer-move handler must outlive the function that installed it, so it
// is handed to this registry and kept for the rest of the process. This is a
// deliberate, process-wide ownership exception: nothing ever unregisters it.
// Installing a new handler (a restarted session) replaces the active one, the
// same way a page reload rebinds its mousemove listener.
package registry

import (
	"sync"
)

// PointerHandler receives pointer positions in viewport coordinates.
type PointerHandler func(x, y int)

var (
	pointerHandler PointerHandler
	installs       int
	mu             sync.RWMutex
)

// OnPointerMove installs h as the process-wide pointer-move handler.
func OnPointerMove(h PointerHandler) {
	mu.Lock()
	defer mu.Unlock()

	pointerHandler = h
	installs++
}

// DispatchPointerMove forwards a pointer position to the active handler.
// It reports whether a handler was installed.
func DispatchPointerMove(x, y int) bool {
	mu.RLock()
	h := pointerHandler
	mu.RUnlock()

	if h == nil {
		return false
	}
	h(x, y)
	return true
}

// Installs returns how many handlers have been installed so far.
func Installs() int {
	mu.RLock()
	defer mu.RUnlock()

	return installs
}
