package sequence

import (
	"fmt"
	"sort"
	"sync"
)

// EngineFactory creates and lists engines by short name.
type EngineFactory interface {
	// Get returns the engine registered under name.
	Get(name string) (Engine, error)
	// List returns the registered names in sorted order.
	List() []string
	// GetAll returns every registered engine keyed by name.
	GetAll() map[string]Engine
	// Register adds or replaces an engine.
	Register(name string, engine Engine)
}

// DefaultFactory is a concurrency-safe EngineFactory.
type DefaultFactory struct {
	mu      sync.RWMutex
	engines map[string]Engine
}

// NewDefaultFactory returns a factory with the built-in engines registered
// as "fast" and "reference".
func NewDefaultFactory() *DefaultFactory {
	f := &DefaultFactory{engines: make(map[string]Engine)}
	f.Register("fast", FastEngine{})
	f.Register("reference", ReferenceEngine{})
	return f
}

var (
	globalFactory     *DefaultFactory
	globalFactoryOnce sync.Once
)

// GlobalFactory returns the process-wide factory used by the application
// when no other factory is supplied. Engines registered on it are visible
// to every later Application.
func GlobalFactory() *DefaultFactory {
	globalFactoryOnce.Do(func() {
		globalFactory = NewDefaultFactory()
	})
	return globalFactory
}

// Register implements EngineFactory.
func (f *DefaultFactory) Register(name string, engine Engine) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.engines[name] = engine
}

// Get implements EngineFactory.
func (f *DefaultFactory) Get(name string) (Engine, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	e, ok := f.engines[name]
	if !ok {
		return nil, fmt.Errorf("unknown engine %q", name)
	}
	return e, nil
}

// List implements EngineFactory.
func (f *DefaultFactory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	names := make([]string, 0, len(f.engines))
	for name := range f.engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAll implements EngineFactory.
func (f *DefaultFactory) GetAll() map[string]Engine {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make(map[string]Engine, len(f.engines))
	for k, v := range f.engines {
		out[k] = v
	}
	return out
}
