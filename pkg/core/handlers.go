// core/handlers.go
package core

import "net/http"

// InprocHandler is the signature for in-process handlers bound by name in the manifest.
// A non-nil err is written as {"detail": err} with status (default 500);
// otherwise out is encoded as JSON with status (default 200).
type InprocHandler func(r *http.Request) (out any, status int, err error)

// Handlers maps manifest handler names to implementations.
type Handlers map[string]InprocHandler

// Register makes a handler available under a name referenced in the manifest.
func (hs Handlers) Register(name string, h InprocHandler) {
	hs[name] = h
}

// Lookup retrieves a registered in-proc handler by name.
func (hs Handlers) Lookup(name string) (InprocHandler, bool) {
	h, ok := hs[name]
	return h, ok
}
