package common

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type durationHolder struct {
	Timeout Duration `json:"timeout" yaml:"timeout" toml:"timeout"`
}

func TestDuration_UnmarshalText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{input: "30s", expected: 30 * time.Second},
		{input: "1h30m", expected: 90 * time.Minute},
		{input: "250ms", expected: 250 * time.Millisecond},
		{input: "0s", expected: 0},
		{input: "-5s", expected: -5 * time.Second},
		{input: "30", wantErr: true},
		{input: "", wantErr: true},
		{input: "soon", wantErr: true},
	}

	for _, tt := range tests {
		var d Duration
		err := d.UnmarshalText([]byte(tt.input))
		if tt.wantErr {
			require.ErrorContains(t, err, "invalid duration", tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		require.Equal(t, tt.expected, d.Duration, tt.input)
	}
}

func TestDuration_Decoders(t *testing.T) {
	t.Parallel()

	var fromJSON durationHolder
	require.NoError(t, json.Unmarshal([]byte(`{"timeout":"45s"}`), &fromJSON))
	require.Equal(t, 45*time.Second, fromJSON.Timeout.Duration)

	var fromYAML durationHolder
	require.NoError(t, yaml.Unmarshal([]byte("timeout: 2m\n"), &fromYAML))
	require.Equal(t, 2*time.Minute, fromYAML.Timeout.Duration)

	var fromTOML durationHolder
	_, err := toml.Decode(`timeout = "10ms"`, &fromTOML)
	require.NoError(t, err)
	require.Equal(t, 10*time.Millisecond, fromTOML.Timeout.Duration)

	require.Error(t, json.Unmarshal([]byte(`{"timeout":"forever"}`), &fromJSON))
}

func TestDuration_MarshalText(t *testing.T) {
	t.Parallel()

	out, err := json.Marshal(durationHolder{Timeout: NewDuration(90 * time.Second)})
	require.NoError(t, err)
	require.JSONEq(t, `{"timeout":"1m30s"}`, string(out))

	var back durationHolder
	require.NoError(t, json.Unmarshal(out, &back))
	require.Equal(t, 90*time.Second, back.Timeout.Duration)
}

func TestDuration_JSONSchema(t *testing.T) {
	t.Parallel()

	schema := Duration{}.JSONSchema()
	require.Equal(t, "string", schema.Type)
	require.Equal(t, "Duration", schema.Title)
	require.NotEmpty(t, schema.Examples)
}
