// pkg/loader/decode_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test JSON, YAML, TOML, KV and environment decoding into Value

package loader_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/temple/pkg/errors"
	"github.com/arthur-debert/temple/pkg/loader"
	"github.com/arthur-debert/temple/pkg/types"
)

func TestDecode_EquivalentAcrossFormats(t *testing.T) {
	sources := map[types.Format]string{
		types.FormatJSON: `{"FOO": "bar", "name": "temple"}`,
		types.FormatYAML: "FOO: bar\nname: temple\n",
		types.FormatTOML: "FOO = \"bar\"\nname = \"temple\"\n",
		types.FormatKV:   "FOO=bar\nname = temple\n",
	}
	want := map[string]any{"FOO": "bar", "name": "temple"}

	for format, src := range sources {
		t.Run(format.String(), func(t *testing.T) {
			value, err := loader.Decode(format, []byte(src))
			require.NoError(t, err)
			if diff := cmp.Diff(want, value.Interface()); diff != "" {
				t.Errorf("Decode(%s) mismatch (-want +got):\n%s", format, diff)
			}
		})
	}

	env := loader.DecodeEnviron([]string{"FOO=bar", "name=temple"})
	assert.Empty(t, cmp.Diff(want, env.Interface()))
}

func TestDecode_JSON(t *testing.T) {
	value, err := loader.Decode(types.FormatJSON, []byte(`{
		"n": 3, "f": 1.5, "b": true, "z": null,
		"list": [1, "two", {"k": "v"}],
		"nested": {"inner": {"x": -7}}
	}`))
	require.NoError(t, err)

	want := map[string]any{
		"n":      int64(3),
		"f":      1.5,
		"b":      true,
		"z":      nil,
		"list":   []any{int64(1), "two", map[string]any{"k": "v"}},
		"nested": map[string]any{"inner": map[string]any{"x": int64(-7)}},
	}
	if diff := cmp.Diff(want, value.Interface()); diff != "" {
		t.Errorf("JSON mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_JSONEmptyObject(t *testing.T) {
	value, err := loader.Decode(types.FormatJSON, []byte("{}"))
	require.NoError(t, err)
	assert.Equal(t, types.KindMap, value.Kind())
	assert.Equal(t, 0, value.Len())
}

func TestDecode_JSONErrors(t *testing.T) {
	for _, src := range []string{"", "{", `{"a":1} {"b":2}`, `{"a":1}]`} {
		_, err := loader.Decode(types.FormatJSON, []byte(src))
		require.Error(t, err, "source %q", src)
		assert.True(t, errors.IsErrorCode(err, errors.ErrData), "source %q", src)
	}
}

func TestDecode_YAMLDash(t *testing.T) {
	value, err := loader.Decode(types.FormatYAML, []byte("-"))
	require.NoError(t, err)
	assert.Equal(t, types.KindSeq, value.Kind())
	assert.True(t, value.Index(0).IsNull())
}

func TestDecode_YAMLTypes(t *testing.T) {
	value, err := loader.Decode(types.FormatYAML, []byte("count: 2\nratio: 0.5\non: true\nitems:\n  - a\n  - b\n1: numeric key\n"))
	require.NoError(t, err)

	count, _ := value.Get("count")
	assert.Equal(t, int64(2), count.Int())
	ratio, _ := value.Get("ratio")
	assert.Equal(t, 0.5, ratio.Float())
	items, _ := value.Get("items")
	assert.Equal(t, 2, items.Len())
	numeric, ok := value.Get("1")
	require.True(t, ok)
	assert.Equal(t, "numeric key", numeric.Str())
}

func TestDecode_YAMLMalformed(t *testing.T) {
	_, err := loader.Decode(types.FormatYAML, []byte("key: [unclosed\n"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrData))
}

func TestDecode_TOML(t *testing.T) {
	value, err := loader.Decode(types.FormatTOML, []byte(`
title = "site"
when = 1979-05-27T07:32:00Z

[server]
port = 8080
hosts = ["a", "b"]
`))
	require.NoError(t, err)

	server, ok := value.Get("server")
	require.True(t, ok)
	port, _ := server.Get("port")
	assert.Equal(t, int64(8080), port.Int())
	when, _ := value.Get("when")
	assert.Equal(t, "1979-05-27T07:32:00Z", when.Str())

	_, err = loader.Decode(types.FormatTOML, []byte("title = "))
	assert.True(t, errors.IsErrorCode(err, errors.ErrData))
}

func TestDecodeKV(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want map[string]any
	}{
		{"basic", "FOO=bar\nBAZ=qux", map[string]any{"FOO": "bar", "BAZ": "qux"}},
		{"trims both sides", "  FOO  =  bar baz  \r\n", map[string]any{"FOO": "bar baz"}},
		{"splits on first equals", "URL=a=b=c", map[string]any{"URL": "a=b=c"}},
		{"ignores lines without equals", "# comment\nFOO=bar\njunk\n\n", map[string]any{"FOO": "bar"}},
		{"last duplicate wins", "FOO=one\nFOO=two", map[string]any{"FOO": "two"}},
		{"no pairs", "nothing here\n", map[string]any{}},
		{"empty", "", map[string]any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := loader.DecodeKV([]byte(tt.src))
			if diff := cmp.Diff(tt.want, got.Interface()); diff != "" {
				t.Errorf("DecodeKV mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeEnviron(t *testing.T) {
	got := loader.DecodeEnviron([]string{"A=1", "=C:=C:\\", "B= spaced ", "NOEQ"})
	want := map[string]any{"A": "1", "B": " spaced "}
	if diff := cmp.Diff(want, got.Interface()); diff != "" {
		t.Errorf("DecodeEnviron mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_UnknownFormat(t *testing.T) {
	_, err := loader.Decode(types.FormatUnknown, []byte("{}"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrUsage))
}
