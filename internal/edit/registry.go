package edit

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

// ErrNotRegistered is returned (wrapped) by Resolve when no editor is
// registered under the requested name.
var ErrNotRegistered = errors.New("no editor registered under this name")

// Registry maps editor names to editor singletons.
//
// A registry is an explicit value; there is no process-global one. It is safe
// for concurrent use.
type Registry struct {
	mtx     sync.RWMutex
	editors map[string]Editor
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{editors: map[string]Editor{}}
}

// Register registers the given editor under its own name and returns it as
// the caller's handle. Registering a second editor under an already-taken
// name replaces the first; the registry is the sole owner of registered
// editors.
func (r *Registry) Register(e Editor) Editor {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	name := e.GetName()
	if _, replacing := r.editors[name]; replacing {
		log.Debug().Msgf("replacing editor registered under '%s'", name)
	}
	r.editors[name] = e
	return e
}

// Resolve returns the editor registered under the given name.
func (r *Registry) Resolve(name string) (Editor, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	e, ok := r.editors[name]
	if !ok {
		return nil, fmt.Errorf("resolving '%s': %w", name, ErrNotRegistered)
	}
	return e, nil
}
