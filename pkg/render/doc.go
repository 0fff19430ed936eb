// Package render binds a template set to a template engine and renders
// the entry template against the decoded context.
//
// The engine sits behind the narrow Engine interface. NewPongoEngine
// provides the pongo2-backed implementation used by the command line.
package render
