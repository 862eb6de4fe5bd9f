package proxy

import (
	"reflect"
	"sync"
)

// LocalProvider supplies in-process implementations of a contract, looked up
// by canonical contract name. It stands in for whatever dependency-injection
// container owns the local instances.
type LocalProvider interface {
	Implementations(contract string) []any
}

// Registry is the default LocalProvider, a plain in-process store.
type Registry struct {
	mu    sync.Mutex
	impls map[string][]any
}

func NewRegistry() *Registry {
	return &Registry{impls: map[string][]any{}}
}

// Register adds a local implementation of contract T. Registering more than
// one implementation of the same contract makes later resolutions fail as
// ambiguous; the registry itself does not guess which one is meant.
func Register[T any](reg *Registry, impl *T) {
	name := canonicalName(reflect.TypeOf(impl).Elem())
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.impls[name] = append(reg.impls[name], impl)
}

func (reg *Registry) Implementations(contract string) []any {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	return reg.impls[contract]
}
