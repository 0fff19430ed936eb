package render

import (
	"regexp"
	"strings"
)

// tagPattern matches comments and statement tags. Group 1 is the left
// trim marker, group 2 the tag name and group 3 the right trim marker.
var tagPattern = regexp.MustCompile(`(?s)\{#.*?#\}|\{%(-?)\s*(\w+)(?:[^%]|%[^}])*?(-?)%\}`)

var extendsPattern = regexp.MustCompile(`\{%-?\s*extends\s`)

// shift records text inserted into a source: n bytes starting at the
// given 1-based line and byte column of the rewritten source.
type shift struct {
	line, col, n int
}

// escapedSource is a template source with its autoescape mode pinned.
type escapedSource struct {
	text   string
	shifts []shift
}

// withAutoEscape pins mode onto source so that the mode travels with the
// template into every extends, include and macro call. Block and macro
// bodies are pinned on their own; a template that extends another pins
// nothing else, since extends must stay at the top level.
func withAutoEscape(source string, mode AutoEscape) escapedSource {
	open, closing := "{% autoescape on %}", "{% endautoescape %}"
	if mode == EscapeNone {
		open = "{% autoescape off %}"
	}

	b := &sourceBuilder{}
	extends := extendsPattern.MatchString(source)
	if !extends {
		b.insert(open)
	}

	inVerbatim := false
	last := 0
	for _, m := range tagPattern.FindAllStringSubmatchIndex(source, -1) {
		if m[4] < 0 {
			continue // comment
		}
		name := source[m[4]:m[5]]
		switch {
		case name == "verbatim":
			inVerbatim = true
		case name == "endverbatim":
			inVerbatim = false
		case inVerbatim:
		case name == "block", name == "macro":
			b.text(source[last:m[1]])
			last = m[1]
			if m[7] > m[6] {
				b.insert(strings.Replace(open, " %}", " -%}", 1))
			} else {
				b.insert(open)
			}
		case name == "endblock", name == "endmacro":
			b.text(source[last:m[0]])
			last = m[0]
			if m[3] > m[2] {
				b.insert(strings.Replace(closing, "{% ", "{%- ", 1))
			} else {
				b.insert(closing)
			}
		}
	}
	b.text(source[last:])

	if !extends {
		b.insert(closing)
	}
	return escapedSource{text: b.out.String(), shifts: b.shifts}
}

// sourceBuilder tracks the position of the rewritten source.
type sourceBuilder struct {
	out    strings.Builder
	line   int
	col    int
	shifts []shift
}

func (b *sourceBuilder) text(s string) {
	if b.line == 0 {
		b.line, b.col = 1, 1
	}
	b.out.WriteString(s)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		b.line += strings.Count(s, "\n")
		b.col = len(s) - i
	} else {
		b.col += len(s)
	}
}

func (b *sourceBuilder) insert(s string) {
	if b.line == 0 {
		b.line, b.col = 1, 1
	}
	b.shifts = append(b.shifts, shift{line: b.line, col: b.col, n: len(s)})
	b.text(s)
}

// original maps a position in the rewritten source back to the source
// the user wrote.
func (s escapedSource) original(line, col int) (int, int) {
	orig := col
	for _, sh := range s.shifts {
		if sh.line == line && sh.col+sh.n <= col {
			orig -= sh.n
		}
	}
	return line, orig
}
