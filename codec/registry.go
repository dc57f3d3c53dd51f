package codec

import (
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Factory builds a Codec instance for an EncodingID within the Family
// the factory was registered for. For FamilyWindowsCodePage the id's
// CodePage field selects the concrete table; every other Family ignores
// id entirely and returns a fresh instance of its stateless codec.
type Factory func(id EncodingID) Codec

// Registry maps an encoding Family to the Factory that builds codecs for
// it. Concrete codec packages self-register via Register in an init
// function (see e.g. shiftjis.init); callers never construct a Registry
// directly outside of tests.
type Registry struct {
	mu        sync.RWMutex
	factories map[Family]Factory
}

var defaultRegistry = &Registry{
	factories: make(map[Family]Factory),
}

// Register installs f as the factory for family in the default registry.
// Re-registering a family overwrites its previous factory; this is only
// ever used by init functions and tests, never by steady-state callers.
func Register(family Family, f Factory) {
	defaultRegistry.Register(family, f)
}

// Create resolves id to a Codec via the default registry.
func Create(id EncodingID) (Codec, bool) {
	return defaultRegistry.Create(id)
}

func (r *Registry) Register(family Family, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.factories == nil {
		r.factories = make(map[Family]Factory)
	}
	r.factories[family] = f
}

func (r *Registry) Create(id EncodingID) (Codec, bool) {
	r.mu.RLock()
	f, ok := r.factories[id.Family]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return f(id), true
}

// Families reports every Family currently registered, sorted for
// reproducible diagnostics and test output.
func (r *Registry) Families() []Family {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := maps.Keys(r.factories)
	slices.Sort(out)
	return out
}

// Families reports every Family registered in the default registry.
func Families() []Family {
	return defaultRegistry.Families()
}
