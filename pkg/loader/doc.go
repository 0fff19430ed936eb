// Package loader resolves, reads and decodes the render context.
//
// The context format is decided in this order: environment mode, an
// explicit format, the context file's extension. Standard input with no
// explicit format cannot be decoded and is reported as a usage error
// before anything is read.
package loader
