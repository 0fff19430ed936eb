// Package render implements the render command, the only operation temple
// performs: collect templates, load the context, render, write.
package render
