package render

import (
	"path"
	"strings"
)

// AutoEscape is the escaping mode applied to a template's output.
type AutoEscape int

const (
	EscapeNone AutoEscape = iota
	EscapeHTML
)

func (a AutoEscape) String() string {
	if a == EscapeHTML {
		return "html"
	}
	return "none"
}

// Policy picks the escaping mode for a template by its logical name.
type Policy func(name string) AutoEscape

// htmlSuffixes are the extensions escaped by DefaultPolicy.
var htmlSuffixes = map[string]bool{
	".html": true,
	".htm":  true,
	".xml":  true,
}

// DefaultPolicy escapes HTML for names ending in .html, .htm or .xml.
func DefaultPolicy(name string) AutoEscape {
	if htmlSuffixes[strings.ToLower(path.Ext(name))] {
		return EscapeHTML
	}
	return EscapeNone
}

// NoEscapePolicy never escapes.
func NoEscapePolicy(string) AutoEscape {
	return EscapeNone
}

// PolicyFor returns the policy selected by --no-auto-escape.
func PolicyFor(noAutoEscape bool) Policy {
	if noAutoEscape {
		return NoEscapePolicy
	}
	return DefaultPolicy
}
