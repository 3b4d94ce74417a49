package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain", input: "5.12.3", want: "5.12.3"},
		{name: "v prefix", input: "v4.0.0", want: "4.0.0"},
		{name: "whitespace", input: "  4.1.0 ", want: "4.1.0"},
		{name: "prerelease", input: "5.0.0-alpha.1", want: "5.0.0-alpha.1"},
		{name: "blank is not an error", input: "", want: ""},
		{name: "garbage", input: "not-a-version", wantErr: true},
		{name: "partial", input: "4..1", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMajor(t *testing.T) {
	major, ok := Major("5.12.3")
	require.True(t, ok)
	assert.Equal(t, uint64(5), major)

	_, ok = Major("")
	assert.False(t, ok)

	_, ok = Major("nope")
	assert.False(t, ok)
}
