package types

import "time"

// RenderResult summarises one completed render.
type RenderResult struct {
	Entry     string        `json:"entry"`
	Format    Format        `json:"format"`
	Templates int           `json:"templates"`
	Output    string        `json:"output"` // "-" for standard output
	Bytes     int           `json:"bytes"`
	Duration  time.Duration `json:"duration"`
}
