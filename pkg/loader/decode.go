package loader

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/temple/pkg/errors"
	"github.com/arthur-debert/temple/pkg/types"
)

// Decode parses data in the given format. Failures are DATA errors.
func Decode(format types.Format, data []byte) (types.Value, error) {
	var (
		raw any
		err error
	)
	switch format {
	case types.FormatJSON:
		raw, err = decodeJSON(data)
	case types.FormatYAML:
		err = yaml.Unmarshal(data, &raw)
	case types.FormatTOML:
		var doc map[string]any
		err = toml.Unmarshal(data, &doc)
		raw = doc
	case types.FormatKV:
		return DecodeKV(data), nil
	default:
		return types.Null(), errors.New(errors.ErrUsage, MsgUnknownFormat)
	}
	if err != nil {
		return types.Null(), errors.Wrapf(err, errors.ErrData, "malformed %s context", format)
	}

	value, err := types.FromAny(raw)
	if err != nil {
		return types.Null(), errors.Wrapf(err, errors.ErrData, "malformed %s context", format)
	}
	return value, nil
}

func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty document")
		}
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after top-level value at offset %d", dec.InputOffset())
	}
	return raw, nil
}

// DecodeKV parses key=value lines. Each line is split on its first '=',
// both sides are trimmed, lines without '=' are ignored and the last
// occurrence of a key wins.
func DecodeKV(data []byte) types.Value {
	out := map[string]string{}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), len(data)+1)
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), "=")
		if !ok {
			continue
		}
		out[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return types.StringMap(out)
}

// DecodeEnviron turns KEY=VALUE entries into a string mapping. Values
// are kept verbatim; entries with an empty name are dropped.
func DecodeEnviron(environ []string) types.Value {
	out := make(map[string]string, len(environ))
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		out[key] = value
	}
	return types.StringMap(out)
}
