package render

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/arthur-debert/temple/pkg/errors"
	"github.com/arthur-debert/temple/pkg/logging"
	"github.com/arthur-debert/temple/pkg/templates"
	"github.com/arthur-debert/temple/pkg/types"
)

// Request is everything one render needs.
type Request struct {
	// Templates is the full set, entry included.
	Templates []types.Template
	// Entry is the logical name of the template to render.
	Entry   string
	Context types.Value
	Policy  Policy
}

// Render binds req.Templates to engine, compiles every template and
// renders the entry against req.Context. Engine failures are DATA errors
// located by template path; a panic inside the engine is INTERNAL.
func Render(engine Engine, req Request) (out string, err error) {
	logger := logging.GetLogger("render")

	paths := make(map[string]string, len(req.Templates))
	for _, t := range req.Templates {
		paths[t.Name] = t.DisplayName()
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Debug().Str("stack", string(debug.Stack())).Msg("engine panic")
			out = ""
			err = errors.Newf(errors.ErrInternal, "template engine failure: %v", r).
				WithDetail("entry", paths[req.Entry])
		}
	}()

	for _, t := range req.Templates {
		if err := engine.AddTemplate(t.Name, t.Source); err != nil {
			return "", errors.Wrap(err, errors.ErrInternal, "registering templates")
		}
	}

	policy := req.Policy
	if policy == nil {
		policy = DefaultPolicy
	}
	engine.SetAutoEscape(policy)

	var entry Template
	for _, t := range req.Templates {
		compiled, err := engine.Template(t.Name)
		if err != nil {
			return "", dataError(err, paths)
		}
		if t.Name == req.Entry {
			entry = compiled
		}
	}
	if entry == nil {
		return "", errors.Newf(errors.ErrInternal, "entry template %q is not registered", req.Entry)
	}

	logger.Debug().
		Str("entry", paths[req.Entry]).
		Str("autoescape", policy(req.Entry).String()).
		Int("templates", len(req.Templates)).
		Msg("rendering")

	out, err = entry.Render(Context(req.Context))
	if err != nil {
		return "", dataError(err, paths)
	}
	return out, nil
}

// Context converts the decoded value into template variables. A root that
// is not a mapping yields no variables. Keys that cannot be used as
// template identifiers are dropped.
func Context(value types.Value) map[string]any {
	logger := logging.GetLogger("render")
	ctx := make(map[string]any, value.Len())
	if value.Kind() != types.KindMap {
		if !value.IsNull() {
			logger.Debug().
				Str("kind", value.Kind().String()).
				Msg("context root is not a mapping, rendering without variables")
		}
		return ctx
	}

	for _, key := range value.Keys() {
		if !IsIdentifier(key) {
			logger.Debug().Str("key", key).Msg("skipping context key that is not an identifier")
			continue
		}
		item, _ := value.Get(key)
		ctx[key] = item.Interface()
	}
	return ctx
}

// IsIdentifier reports whether key can be referenced from a template.
func IsIdentifier(key string) bool {
	if key == "" {
		return false
	}
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		default:
			return false
		}
	}
	return true
}

// dataError rewrites template names in err to user-facing paths.
func dataError(err error, paths map[string]string) error {
	if serr, ok := err.(*SourceError); ok {
		located := *serr
		if p, known := paths[located.Template]; known {
			located.Template = p
		}
		if msg := located.Err.Error(); strings.Contains(msg, templates.EntryPrefix) {
			located.Err = fmt.Errorf("%s", stripEntryPrefix(msg, paths))
		}
		return errors.Wrap(&located, errors.ErrData, "").
			WithDetail("template", located.Template)
	}
	return errors.Wrap(err, errors.ErrData, "render failed")
}

// stripEntryPrefix replaces reserved entry names quoted in engine messages.
func stripEntryPrefix(msg string, paths map[string]string) string {
	for name, p := range paths {
		if templates.IsEntryName(name) {
			msg = strings.ReplaceAll(msg, name, p)
		}
	}
	return msg
}
