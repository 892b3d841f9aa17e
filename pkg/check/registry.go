package check

import (
	"fmt"
	"sort"
	"sync"

	"github.com/mitchellh/mapstructure"
)

// Decoder builds a check of one kind from raw declarative configuration
// (a decoded YAML or JSON mapping).
type Decoder func(config map[string]any) (Check, error)

// Registry maps kind names to decoders. It exists purely for polymorphic
// deserialization of declarative suites; executing an already-constructed
// check graph never consults it. Registration is append-only: kinds are
// installed at definition time and never replaced, so concurrent reads
// during execution need no coordination beyond the internal lock.
type Registry struct {
	mu       sync.RWMutex
	decoders map[string]Decoder
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{decoders: make(map[string]Decoder)}
}

// Register installs a decoder for a kind.
// Re-registering an existing kind is an error.
func (r *Registry) Register(kind string, d Decoder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.decoders[kind]; exists {
		return fmt.Errorf("check kind already registered: %s", kind)
	}
	r.decoders[kind] = d
	return nil
}

// MustRegister is Register for definition-time use; it panics on conflict.
func (r *Registry) MustRegister(kind string, d Decoder) {
	if err := r.Register(kind, d); err != nil {
		panic(err)
	}
}

// Decode builds a check from its kind name and raw configuration.
func (r *Registry) Decode(kind string, config map[string]any) (Check, error) {
	r.mu.RLock()
	d, ok := r.decoders[kind]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown check kind: %s", kind)
	}
	c, err := d(config)
	if err != nil {
		return nil, fmt.Errorf("decode %s check: %w", kind, err)
	}
	return c, nil
}

// Kinds lists the registered kind names in sorted order.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kinds := make([]string, 0, len(r.decoders))
	for k := range r.decoders {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// DefaultRegistry holds the built-in kinds plus anything callers add.
var DefaultRegistry = NewRegistry()

// Register installs a decoder into the default registry.
func Register(kind string, d Decoder) error {
	return DefaultRegistry.Register(kind, d)
}

// Decode builds a check from the default registry.
func Decode(kind string, config map[string]any) (Check, error) {
	return DefaultRegistry.Decode(kind, config)
}

func decodeConfig(config map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  out,
		TagName: "mapstructure",
	})
	if err != nil {
		return err
	}
	return dec.Decode(config)
}

func init() {
	DefaultRegistry.MustRegister(KindEquality, func(config map[string]any) (Check, error) {
		var c Equality
		if err := decodeConfig(config, &c); err != nil {
			return nil, err
		}
		if c.Path == "" {
			return nil, fmt.Errorf("equality check requires a path")
		}
		return &c, nil
	})

	DefaultRegistry.MustRegister(KindContains, func(config map[string]any) (Check, error) {
		var c Contains
		if err := decodeConfig(config, &c); err != nil {
			return nil, err
		}
		if c.Path == "" {
			return nil, fmt.Errorf("contains check requires a path")
		}
		return &c, nil
	})

	DefaultRegistry.MustRegister(KindJudge, decodeJudge)
}
