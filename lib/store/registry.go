package store

import (
	"fmt"
	"sort"

	"github.com/lni/dragonboat/v4/logger"
	"github.com/puzpuzpuz/xsync/v3"
)

var regLogger = logger.GetLogger("registry")

// --------------------------------------------------------------------------
// Named Store Registry
// --------------------------------------------------------------------------

// Registry maps names to independent store instances so a test harness or
// preview session can address several simulated backends by name. The
// registry only hands out references; the stores themselves stay fully
// independent and share no state.
//
// Thread-safety: all methods are safe for concurrent use.
type Registry[ID comparable, E any] struct {
	stores *xsync.MapOf[string, IStore[ID, E]]
}

// NewRegistry creates an empty registry.
func NewRegistry[ID comparable, E any]() *Registry[ID, E] {
	return &Registry[ID, E]{
		stores: xsync.NewMapOf[string, IStore[ID, E]](),
	}
}

// Register adds a store under the given name.
// It fails if the name is already taken.
func (r *Registry[ID, E]) Register(name string, s IStore[ID, E]) error {
	if _, loaded := r.stores.LoadOrStore(name, s); loaded {
		return fmt.Errorf("store %q is already registered", name)
	}
	regLogger.Infof("registered store %q", name)
	return nil
}

// Lookup returns the store registered under the given name.
func (r *Registry[ID, E]) Lookup(name string) (IStore[ID, E], bool) {
	return r.stores.Load(name)
}

// Remove drops the store registered under the given name.
// Removing an unknown name is a no-op.
func (r *Registry[ID, E]) Remove(name string) {
	if _, loaded := r.stores.LoadAndDelete(name); loaded {
		regLogger.Infof("removed store %q", name)
	}
}

// Names returns the names of all registered stores in sorted order.
func (r *Registry[ID, E]) Names() []string {
	names := make([]string, 0, r.stores.Size())
	r.stores.Range(func(name string, _ IStore[ID, E]) bool {
		names = append(names, name)
		return true
	})
	sort.Strings(names)
	return names
}

// Len returns the number of registered stores.
func (r *Registry[ID, E]) Len() int {
	return r.stores.Size()
}
