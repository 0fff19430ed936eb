package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/temple/pkg/types"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want types.Format
	}{
		{"json", types.FormatJSON},
		{"JSON", types.FormatJSON},
		{"yaml", types.FormatYAML},
		{"yml", types.FormatYAML},
		{" kv ", types.FormatKV},
		{"toml", types.FormatTOML},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := types.ParseFormat(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := types.ParseFormat("env")
	assert.Error(t, err, "env mode is only selected by --env")
	_, err = types.ParseFormat("xml")
	assert.ErrorContains(t, err, `"xml"`)
}

func TestFormatForExtension(t *testing.T) {
	assert.Equal(t, types.FormatJSON, types.FormatForExtension(".json"))
	assert.Equal(t, types.FormatYAML, types.FormatForExtension(".YML"))
	assert.Equal(t, types.FormatYAML, types.FormatForExtension("yaml"))
	assert.Equal(t, types.FormatTOML, types.FormatForExtension(".toml"))
	assert.Equal(t, types.FormatUnknown, types.FormatForExtension(".kv"))
	assert.Equal(t, types.FormatUnknown, types.FormatForExtension(""))
}

func TestInvocationStreams(t *testing.T) {
	inv := types.Invocation{}
	assert.True(t, inv.ReadsStdin())
	assert.True(t, inv.WritesStdout())

	inv = types.Invocation{ContextPath: "-", OutputPath: "-"}
	assert.True(t, inv.ReadsStdin())
	assert.True(t, inv.WritesStdout())

	inv = types.Invocation{UseEnv: true, OutputPath: "out.txt"}
	assert.False(t, inv.ReadsStdin(), "env mode never touches stdin")
	assert.False(t, inv.WritesStdout())
}

func TestTemplateDisplayName(t *testing.T) {
	assert.Equal(t, "t/base.txt", types.Template{Name: "base.txt", Path: "t/base.txt"}.DisplayName())
	assert.Equal(t, "inline", types.Template{Name: "inline"}.DisplayName())
}
