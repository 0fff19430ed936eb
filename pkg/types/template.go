package types

// Template is a named template source registered with the engine.
type Template struct {
	// Name is the logical name other templates use to reference this one.
	Name string
	// Path is the file the source was read from, empty when not file-backed.
	Path string
	// Source is the template text.
	Source string
}

// DisplayName returns the path when known, the logical name otherwise.
func (t Template) DisplayName() string {
	if t.Path != "" {
		return t.Path
	}
	return t.Name
}
