package race

import (
	"sort"
	"sync"

	"github.com/KirkDiggler/rpg-content/internal/errors"
)

// Registry serves race descriptors keyed by ID
type Registry interface {
	// Register adds a race
	// Returns errors.InvalidArgument for nil, unnamed or faceless playable races
	// Returns errors.AlreadyExists if the ID is taken
	Register(d Descriptor) error

	// Get returns the race with the given ID
	// Returns errors.NotFound if it is not registered
	Get(id string) (Descriptor, error)

	// List returns every race sorted by ID
	List() []Descriptor

	// ListPlayable returns the playable races sorted by ID
	ListPlayable() []Descriptor
}

type registry struct {
	mu    sync.RWMutex
	races map[string]Descriptor
}

// NewRegistry creates an empty registry
func NewRegistry() Registry {
	return &registry{
		races: make(map[string]Descriptor),
	}
}

// NewDefaultRegistry creates a registry holding the builtin races
func NewDefaultRegistry() (Registry, error) {
	r := NewRegistry()
	for _, d := range Builtin() {
		if err := r.Register(d); err != nil {
			return nil, errors.Wrapf(err, "failed to register builtin race %s", d.ID())
		}
	}
	return r, nil
}

func (r *registry) Register(d Descriptor) error {
	if d == nil {
		return errors.InvalidArgument("race descriptor cannot be nil")
	}
	if d.ID() == "" {
		return errors.InvalidArgument("race ID cannot be empty")
	}
	if d.IsPlayable() && len(d.Faces()) == 0 {
		return errors.InvalidArgumentf("playable race %s must offer at least one face", d.ID()).
			WithMeta("race_id", d.ID())
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.races[d.ID()]; exists {
		return errors.AlreadyExistsf("race %s is already registered", d.ID()).
			WithMeta("race_id", d.ID())
	}
	r.races[d.ID()] = d

	return nil
}

func (r *registry) Get(id string) (Descriptor, error) {
	if id == "" {
		return nil, errors.InvalidArgument("race ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.races[id]
	if !ok {
		return nil, errors.NotFoundf("race %s not found", id).WithMeta("race_id", id)
	}
	return d, nil
}

func (r *registry) List() []Descriptor {
	return r.filter(func(Descriptor) bool { return true })
}

func (r *registry) ListPlayable() []Descriptor {
	return r.filter(Descriptor.IsPlayable)
}

func (r *registry) filter(keep func(Descriptor) bool) []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Descriptor, 0, len(r.races))
	for _, d := range r.races {
		if keep(d) {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}
