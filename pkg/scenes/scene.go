package scenes

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/macro-ai/archdiagrams/pkg/diagram"
	"github.com/macro-ai/archdiagrams/pkg/errors"
)

// Builder declares one diagram.
type Builder func() (*diagram.Diagram, error)

// Scene is a registered diagram.
type Scene struct {
	Key     string // registry key, e.g. "future-scaling"
	Name    string // display name used in reports
	Builder Builder
}

// Build runs the scene's builder and validates the diagram. A missing
// builder, a nil diagram and a builder panic are returned as errors. When
// only validation fails the diagram is returned alongside the error.
func (s Scene) Build() (d *diagram.Diagram, err error) {
	defer func() {
		if p := recover(); p != nil {
			d, err = nil, errors.New(errors.ErrCodeBuilderPanic, "panic: %v", p)
		}
	}()

	if s.Builder == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "scene %q has no builder", s.Key)
	}
	d, err = s.Builder()
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, errors.New(errors.ErrCodeInternal, "scene %q built no diagram", s.Key)
	}
	if err := d.Validate(); err != nil {
		return d, err
	}
	return d, nil
}

// Registry keeps scenes in registration order.
type Registry struct {
	scenes *orderedmap.OrderedMap[string, Scene]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{scenes: orderedmap.New[string, Scene]()}
}

// Default returns a registry holding the built-in scenes in their
// documented order.
func Default() *Registry {
	r := NewRegistry()
	for _, s := range builtin() {
		if err := r.Register(s); err != nil {
			panic(err)
		}
	}
	return r
}

// Register appends a scene. Keys must be valid and unique.
func (r *Registry) Register(s Scene) error {
	if err := errors.ValidateSceneKey(s.Key); err != nil {
		return err
	}
	if s.Builder == nil {
		return errors.New(errors.ErrCodeInvalidInput, "scene %q has no builder", s.Key)
	}
	if _, exists := r.scenes.Get(s.Key); exists {
		return errors.New(errors.ErrCodeInvalidInput, "scene %q already registered", s.Key)
	}
	if s.Name == "" {
		s.Name = s.Key
	}
	r.scenes.Set(s.Key, s)
	return nil
}

// Get looks up a scene by key.
func (r *Registry) Get(key string) (Scene, bool) {
	return r.scenes.Get(key)
}

// Len returns the number of registered scenes.
func (r *Registry) Len() int { return r.scenes.Len() }

// All returns every scene in registration order.
func (r *Registry) All() []Scene {
	out := make([]Scene, 0, r.scenes.Len())
	for pair := r.scenes.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

// Keys returns every key in registration order.
func (r *Registry) Keys() []string {
	out := make([]string, 0, r.scenes.Len())
	for pair := r.scenes.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

// Select returns the scenes named by keys, in registration order rather
// than the order given. An empty selection returns every scene.
func (r *Registry) Select(keys []string) ([]Scene, error) {
	if len(keys) == 0 {
		return r.All(), nil
	}

	want := make(map[string]bool, len(keys))
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if _, ok := r.scenes.Get(k); !ok {
			return nil, errors.New(errors.ErrCodeUnknownScene, "unknown scene %q (available: %s)", k, strings.Join(r.Keys(), ", "))
		}
		want[k] = true
	}

	var out []Scene
	for pair := r.scenes.Oldest(); pair != nil; pair = pair.Next() {
		if want[pair.Key] {
			out = append(out, pair.Value)
		}
	}
	return out, nil
}
