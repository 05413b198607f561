// Package jsonvalue accepts JSON scalars that arrive either typed or as
// strings, as form inputs and decimal serializers tend to send them.
package jsonvalue

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrInvalid = errors.New("invalid value")

// Value holds the textual form of a JSON scalar, whether it was sent as a
// string, a number or null. Null and missing both read as "".
type Value string

func (v *Value) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*v = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = Value(strings.TrimSpace(s))
	default:
		*v = Value(b)
	}
	return nil
}

func (v Value) IsEmpty() bool {
	return v == ""
}

// Int64 parses an integer. "100.0" is accepted, "2.5" is not. Empty reads
// as 0.
func (v Value) Int64(field string) (int64, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(string(v), 10, 64)
	if err == nil {
		return n, nil
	}
	f, ferr := strconv.ParseFloat(string(v), 64)
	if ferr == nil && f == math.Trunc(f) && math.Abs(f) < math.MaxInt64 {
		return int64(f), nil
	}
	return 0, fmt.Errorf("%w: %s=%q", ErrInvalid, field, string(v))
}

// Float64 parses a finite decimal. Empty reads as 0.
func (v Value) Float64(field string) (float64, error) {
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(string(v), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalid, field, string(v))
	}
	return f, nil
}
