package templates

import (
	"github.com/arthur-debert/temple/pkg/errors"
	"github.com/arthur-debert/temple/pkg/types"
)

// Set is an ordered collection of templates with unique names.
type Set struct {
	order  []string
	byName map[string]types.Template
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{byName: make(map[string]types.Template)}
}

// Add registers t. Registering a name twice is an internal error since
// collection and the entry prefix guarantee uniqueness.
func (s *Set) Add(t types.Template) error {
	if _, exists := s.byName[t.Name]; exists {
		return errors.Newf(errors.ErrInternal, "template %q registered twice", t.Name).
			WithDetail("name", t.Name)
	}
	s.order = append(s.order, t.Name)
	s.byName[t.Name] = t
	return nil
}

// Get returns the template registered under name.
func (s *Set) Get(name string) (types.Template, bool) {
	t, ok := s.byName[name]
	return t, ok
}

// Templates returns the registered templates in registration order.
func (s *Set) Templates() []types.Template {
	out := make([]types.Template, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.byName[name])
	}
	return out
}

// Len returns the number of registered templates.
func (s *Set) Len() int {
	return len(s.order)
}
