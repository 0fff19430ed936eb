// pkg/types/value_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test conversion of decoder output into the context Value tree

package types_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/temple/pkg/types"
)

func TestFromAny_Scalars(t *testing.T) {
	tests := []struct {
		name     string
		in       any
		wantKind types.Kind
		want     any
	}{
		{"nil", nil, types.KindNull, nil},
		{"bool", true, types.KindBool, true},
		{"string", "bar", types.KindString, "bar"},
		{"int", 42, types.KindInt, int64(42)},
		{"uint8", uint8(7), types.KindInt, int64(7)},
		{"float", 1.5, types.KindFloat, 1.5},
		{"json_int", json.Number("12"), types.KindInt, int64(12)},
		{"json_float", json.Number("1.25"), types.KindFloat, 1.25},
		{"time", time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), types.KindString, "2024-01-02T03:04:05Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := types.FromAny(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, v.Kind())
			assert.Equal(t, tt.want, v.Interface())
		})
	}
}

func TestFromAny_Nested(t *testing.T) {
	in := map[string]any{
		"name": "temple",
		"tags": []any{"a", 1, nil},
		"meta": map[any]any{1: "one", "two": 2.5},
	}

	v, err := types.FromAny(in)
	require.NoError(t, err)
	assert.Equal(t, types.KindMap, v.Kind())
	assert.Equal(t, []string{"meta", "name", "tags"}, v.Keys())

	want := map[string]any{
		"name": "temple",
		"tags": []any{"a", int64(1), nil},
		"meta": map[string]any{"1": "one", "two": 2.5},
	}
	if diff := cmp.Diff(want, v.Interface()); diff != "" {
		t.Errorf("Interface() mismatch (-want +got):\n%s", diff)
	}

	tags, ok := v.Get("tags")
	require.True(t, ok)
	assert.Equal(t, 3, tags.Len())
	assert.Equal(t, "a", tags.Index(0).Str())
	assert.True(t, tags.Index(2).IsNull())
	assert.True(t, tags.Index(10).IsNull())
}

func TestFromAny_Unsupported(t *testing.T) {
	_, err := types.FromAny(make(chan int))
	assert.Error(t, err)
}

func TestStringMap_LookupEquivalence(t *testing.T) {
	fromKV := types.StringMap(map[string]string{"FOO": "bar"})
	fromJSON, err := types.FromAny(map[string]any{"FOO": "bar"})
	require.NoError(t, err)

	if diff := cmp.Diff(fromJSON.Interface(), fromKV.Interface()); diff != "" {
		t.Errorf("KV and JSON mappings differ (-json +kv):\n%s", diff)
	}
}

func TestMap_NilIsEmpty(t *testing.T) {
	v := types.Map(nil)
	assert.Equal(t, types.KindMap, v.Kind())
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, map[string]any{}, v.Interface())

	_, ok := types.Null().Get("x")
	assert.False(t, ok)
}
