// Package event is an in-process dispatcher for domain events such as
// vehicle status changes. Listeners are registered at boot; dispatch is
// synchronous unless the caller opts into DispatchAsync.
package event

import "sync"

// Handler receives an event payload.
type Handler func(payload interface{})

var (
	mu       sync.RWMutex
	handlers = map[string][]Handler{}
)

// Listen registers a handler for the named event.
func Listen(name string, h Handler) {
	mu.Lock()
	defer mu.Unlock()
	handlers[name] = append(handlers[name], h)
}

// Dispatch calls every listener for the named event, in registration order.
func Dispatch(name string, payload interface{}) {
	for _, h := range listeners(name) {
		h(payload)
	}
}

// DispatchAsync runs each listener in its own goroutine and returns
// immediately. A panicking listener is contained.
func DispatchAsync(name string, payload interface{}) {
	for _, h := range listeners(name) {
		go func(h Handler) {
			defer func() { _ = recover() }()
			h(payload)
		}(h)
	}
}

func listeners(name string) []Handler {
	mu.RLock()
	defer mu.RUnlock()
	hs := make([]Handler, len(handlers[name]))
	copy(hs, handlers[name])
	return hs
}

// Reset removes all listeners. Tests use it to isolate registrations.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	handlers = map[string][]Handler{}
}
