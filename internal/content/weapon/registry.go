package weapon

import (
	"sort"
	"sync"

	"github.com/KirkDiggler/rpg-content/internal/errors"
)

// Factory builds a weapon from an opaque model
type Factory func(model any) Weapon

// Registry maps weapon kinds to their factories
type Registry interface {
	// Register adds a factory for kind
	// Returns errors.InvalidArgument for an empty kind or nil factory
	// Returns errors.AlreadyExists if kind is taken
	Register(kind string, factory Factory) error

	// Create builds a weapon of the given kind with no wielder
	// Returns errors.NotFound for unknown kinds
	Create(kind string, model any) (Weapon, error)

	// Kinds returns the registered kinds in order
	Kinds() []string
}

type registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry
func NewRegistry() Registry {
	return &registry{
		factories: make(map[string]Factory),
	}
}

// NewDefaultRegistry creates a registry holding the builtin weapon kinds
func NewDefaultRegistry() (Registry, error) {
	r := NewRegistry()
	if err := r.Register(MeleeKind, CreateMelee); err != nil {
		return nil, errors.Wrap(err, "failed to register melee weapon")
	}
	return r, nil
}

func (r *registry) Register(kind string, factory Factory) error {
	if kind == "" {
		return errors.InvalidArgument("weapon kind cannot be empty")
	}
	if factory == nil {
		return errors.InvalidArgumentf("factory for weapon kind %s cannot be nil", kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[kind]; exists {
		return errors.AlreadyExistsf("weapon kind %s is already registered", kind).
			WithMeta("kind", kind)
	}
	r.factories[kind] = factory

	return nil
}

func (r *registry) Create(kind string, model any) (Weapon, error) {
	r.mu.RLock()
	factory, ok := r.factories[kind]
	r.mu.RUnlock()

	if !ok {
		return nil, errors.NotFoundf("weapon kind %s not found", kind).WithMeta("kind", kind)
	}
	return factory(model), nil
}

func (r *registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]string, 0, len(r.factories))
	for kind := range r.factories {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}
