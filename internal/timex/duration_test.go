package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type holder struct {
	Timeout Duration `json:"timeout" yaml:"timeout"`
}

func TestDuration_JSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", in: `{"timeout":"5s"}`, want: 5 * time.Second},
		{name: "nanoseconds", in: `{"timeout":1500}`, want: 1500 * time.Nanosecond},
		{name: "bad string", in: `{"timeout":"soon"}`, wantErr: true},
		{name: "bool", in: `{"timeout":true}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h holder
			err := json.Unmarshal([]byte(tt.in), &h)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, h.Timeout.Duration)
		})
	}
}

func TestDuration_YAML(t *testing.T) {
	var h holder
	require.NoError(t, yaml.Unmarshal([]byte("timeout: 250ms\n"), &h))
	assert.Equal(t, 250*time.Millisecond, h.Timeout.Duration)

	require.NoError(t, yaml.Unmarshal([]byte("timeout: 42\n"), &h))
	assert.Equal(t, 42*time.Nanosecond, h.Timeout.Duration)

	require.Error(t, yaml.Unmarshal([]byte("timeout: later\n"), &h))
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(holder{Timeout: Duration{3 * time.Second}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"timeout":"3s"}`, string(b))
}
