// Package output delivers the rendered bytes to standard output or to a
// file, with create-new or overwrite semantics.
package output
