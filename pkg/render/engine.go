package render

import "fmt"

// Engine is the capability the render driver needs from a template engine.
type Engine interface {
	// AddTemplate registers source under name.
	AddTemplate(name, source string) error
	// SetAutoEscape installs the escaping policy. Each template is escaped
	// by the mode its own name selects; the policy must be set before the
	// template is compiled.
	SetAutoEscape(policy Policy)
	// Template compiles and returns the template registered under name.
	Template(name string) (Template, error)
}

// Template is a compiled template ready to render.
type Template interface {
	Name() string
	Render(ctx map[string]any) (string, error)
}

// SourceError locates an engine failure inside a template.
// Engines report template names; the driver rewrites them to paths.
type SourceError struct {
	Template string
	Line     int
	Column   int
	Err      error
}

func (e *SourceError) Error() string {
	switch {
	case e.Template == "":
		return e.Err.Error()
	case e.Line > 0:
		return fmt.Sprintf("%s:%d:%d: %v", e.Template, e.Line, e.Column, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Template, e.Err)
	}
}

func (e *SourceError) Unwrap() error {
	return e.Err
}
