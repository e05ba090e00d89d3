package bdfare

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexInt_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "number", input: `7`, want: 7},
		{name: "numeric string", input: `"7"`, want: 7},
		{name: "float delivered as string", input: `"2.0"`, want: 2},
		{name: "float number", input: `2.0`, want: 2},
		{name: "null", input: `null`, want: 0},
		{name: "empty string", input: `""`, want: 0},
		{name: "padded string", input: `" 9 "`, want: 9},
		{name: "garbage string tolerated", input: `"many"`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexInt
			require.NoError(t, json.Unmarshal([]byte(tt.input), &f))
			assert.Equal(t, tt.want, f.Int())
		})
	}
}

func TestFlexString_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "string", input: `"147"`, want: "147"},
		{name: "bare number", input: `147`, want: "147"},
		{name: "null", input: `null`, want: ""},
		{name: "empty string", input: `""`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexString
			require.NoError(t, json.Unmarshal([]byte(tt.input), &f))
			assert.Equal(t, tt.want, f.String())
		})
	}
}

func TestFlexTypes_InStruct(t *testing.T) {
	// Mixed forms in one record, as the API actually delivers them
	payload := `{"flightNumber": 147, "duration": "65", "seatsRemaining": "5"}`

	var rec struct {
		FlightNumber   FlexString `json:"flightNumber"`
		Duration       FlexInt    `json:"duration"`
		SeatsRemaining FlexInt    `json:"seatsRemaining"`
	}
	require.NoError(t, json.Unmarshal([]byte(payload), &rec))

	assert.Equal(t, "147", rec.FlightNumber.String())
	assert.Equal(t, 65, rec.Duration.Int())
	assert.Equal(t, 5, rec.SeatsRemaining.Int())
}
