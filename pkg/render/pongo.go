package render

import (
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/arthur-debert/temple/pkg/templates"
)

// memoryLoader serves registered sources to pongo2. Names are resolved
// from the root of the set, never relative to the including template.
// Each source is served with the autoescape mode its name selects.
type memoryLoader struct {
	sources map[string]string
	policy  Policy
	served  map[string]escapedSource
}

func (l *memoryLoader) Abs(_, name string) string {
	if name == "" || templates.IsEntryName(name) {
		return name
	}
	return strings.TrimPrefix(path.Clean(name), "/")
}

func (l *memoryLoader) Get(name string) (io.Reader, error) {
	source, ok := l.sources[name]
	if !ok {
		return nil, fmt.Errorf("template %q not found", name)
	}
	escaped := withAutoEscape(source, l.policy(name))
	l.served[name] = escaped
	return bytes.NewBufferString(escaped.text), nil
}

// position maps an engine position in name back to the registered source.
func (l *memoryLoader) position(name string, line, col int) (int, int) {
	if escaped, ok := l.served[name]; ok && line > 0 {
		return escaped.original(line, col)
	}
	return line, col
}

// PongoEngine renders Jinja-style templates with pongo2.
type PongoEngine struct {
	loader *memoryLoader
	set    *pongo2.TemplateSet
}

// NewPongoEngine returns an engine with an empty template set.
func NewPongoEngine() *PongoEngine {
	loader := &memoryLoader{
		sources: make(map[string]string),
		policy:  DefaultPolicy,
		served:  make(map[string]escapedSource),
	}
	return &PongoEngine{
		loader: loader,
		set:    pongo2.NewSet("temple", loader),
	}
}

func (e *PongoEngine) AddTemplate(name, source string) error {
	if _, exists := e.loader.sources[name]; exists {
		return fmt.Errorf("template %q already registered", name)
	}
	e.loader.sources[name] = source
	return nil
}

func (e *PongoEngine) SetAutoEscape(policy Policy) {
	if policy == nil {
		policy = DefaultPolicy
	}
	e.loader.policy = policy
}

func (e *PongoEngine) Template(name string) (Template, error) {
	tpl, err := e.set.FromCache(name)
	if err != nil {
		return nil, e.loader.pongoError(name, err)
	}
	return &pongoTemplate{name: name, tpl: tpl, loader: e.loader}, nil
}

type pongoTemplate struct {
	name   string
	tpl    *pongo2.Template
	loader *memoryLoader
}

func (t *pongoTemplate) Name() string { return t.name }

func (t *pongoTemplate) Render(ctx map[string]any) (string, error) {
	out, err := t.tpl.Execute(pongo2.Context(ctx))
	if err != nil {
		return "", t.loader.pongoError(t.name, err)
	}
	return out, nil
}

func (l *memoryLoader) pongoError(name string, err error) error {
	perr, ok := err.(*pongo2.Error)
	if !ok {
		return &SourceError{Template: name, Err: err}
	}

	where := perr.Filename
	if where == "" || where == "<string>" {
		where = name
	}
	cause := perr.OrigError
	switch {
	case perr.Sender == "fromfile":
		cause = fmt.Errorf("template not found")
	case cause == nil:
		cause = fmt.Errorf("%s failed", perr.Sender)
	}
	line, col := l.position(where, perr.Line, perr.Column)
	return &SourceError{
		Template: where,
		Line:     line,
		Column:   col,
		Err:      cause,
	}
}
