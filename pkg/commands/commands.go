// Package commands provides high-level command implementations for temple.
//
// This package contains the command orchestration layer that coordinates
// between the CLI interface and the rendering pipeline.
//
// Each command is implemented in its own subdirectory:
//   - render/ - Render command
//
// This file re-exports the command functions so the CLI depends on a
// single package.
package commands

import (
	"github.com/arthur-debert/temple/pkg/commands/render"
	"github.com/arthur-debert/temple/pkg/types"
)

// RenderOptions configures one render invocation.
type RenderOptions = render.RenderOptions

// Render collects templates, loads the context, renders the entry template
// and writes the result.
func Render(opts RenderOptions) (*types.RenderResult, error) {
	return render.Render(opts)
}
