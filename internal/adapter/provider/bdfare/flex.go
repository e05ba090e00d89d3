package bdfare

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// The upstream API is loosely typed: numeric fields arrive as numbers in some
// responses and as strings in others (seatsRemaining is the usual offender).
// FlexInt and FlexString absorb both forms at the decoding boundary so the
// parsers only ever see one shape.

// FlexInt decodes from a JSON number, a numeric string, or null.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}

	s := string(data)
	if s[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
	}
	if s == "" {
		*f = 0
		return nil
	}

	// Some variants deliver integers as floats ("2.0")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexInt(v)
	return nil
}

// Int returns the value as a plain int.
func (f FlexInt) Int() int {
	return int(f)
}

// FlexString decodes from a JSON string, number, or null.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}

	*f = FlexString(data)
	return nil
}

// String returns the value as a plain string.
func (f FlexString) String() string {
	return string(f)
}
