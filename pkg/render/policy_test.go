package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/temple/pkg/render"
)

func TestDefaultPolicy(t *testing.T) {
	tests := []struct {
		name string
		want render.AutoEscape
	}{
		{"page.html", render.EscapeHTML},
		{"__entry__/site/index.HTM", render.EscapeHTML},
		{"feed.xml", render.EscapeHTML},
		{"notes.txt", render.EscapeNone},
		{"page.html.j2", render.EscapeNone},
		{"Makefile", render.EscapeNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render.DefaultPolicy(tt.name))
		})
	}
}

func TestPolicyFor(t *testing.T) {
	assert.Equal(t, render.EscapeHTML, render.PolicyFor(false)("page.html"))
	assert.Equal(t, render.EscapeNone, render.PolicyFor(true)("page.html"))
	assert.Equal(t, render.EscapeNone, render.NoEscapePolicy("feed.xml"))
}
