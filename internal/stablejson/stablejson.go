// Package stablejson encodes values as canonical JSON: object keys are
// sorted lexicographically at every nesting level so semantically equal
// values always serialize to identical bytes. Persisted preference data is
// compared byte-wise to decide whether a re-save is needed, which only works
// with a canonical encoding.
package stablejson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// SerializationError reports a value JSON cannot represent (cycles,
// channels, funcs). It is surfaced to the caller, never swallowed.
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("stablejson: value is not serializable: %v", e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

// Marshal produces canonical JSON for v. Struct values are re-encoded
// through a generic tree so object keys come out sorted regardless of field
// declaration order. Array element order is preserved.
func Marshal(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, &SerializationError{Err: err}
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, &SerializationError{Err: err}
	}

	var buf bytes.Buffer
	if err := encode(&buf, tree); err != nil {
		return nil, &SerializationError{Err: err}
	}
	return buf.Bytes(), nil
}

// MarshalString is Marshal returning a string.
func MarshalString(v any) (string, error) {
	b, err := Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// SafeMarshalString is MarshalString returning the fallback when the value
// cannot be serialized.
func SafeMarshalString(v any, fallback string) string {
	s, err := MarshalString(v)
	if err != nil {
		return fallback
	}
	return s
}

// SafeUnmarshal parses text into T and returns the fallback unchanged when
// the input is malformed or empty. Persisted preference data may have been
// corrupted or written by an older schema version; a lenient read keeps that
// indistinguishable from "key absent".
func SafeUnmarshal[T any](text string, fallback T) T {
	var v T
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return fallback
	}
	return v
}

func encode(buf *bytes.Buffer, v any) error {
	switch val := v.(type) {
	case nil:
		buf.WriteString("null")
	case bool:
		if val {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case json.Number:
		buf.WriteString(val.String())
	case string:
		b, err := json.Marshal(val)
		if err != nil {
			return err
		}
		buf.Write(b)
	case []any:
		buf.WriteByte('[')
		for i, elem := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encode(buf, elem); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		buf.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			kb, err := json.Marshal(k)
			if err != nil {
				return err
			}
			buf.Write(kb)
			buf.WriteByte(':')
			if err := encode(buf, val[k]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("unexpected decoded type %T", v)
	}
	return nil
}
