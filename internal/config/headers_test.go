package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadersConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers HeadersConfig
		errMsg  string
	}{
		{name: "defaults", headers: DefaultHeaders()},
		{name: "empty", headers: HeadersConfig{}},
		{
			name:    "bad name",
			headers: HeadersConfig{Set: map[string]string{"Bad Header": "x"}},
			errMsg:  "invalid set header 'Bad Header'",
		},
		{
			name:    "bad value",
			headers: HeadersConfig{Add: map[string]string{"X-Test": "line\nbreak"}},
			errMsg:  "invalid add header 'X-Test'",
		},
		{
			name:    "blank remove",
			headers: HeadersConfig{Remove: []string{"Server", " "}},
			errMsg:  "remove header name cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.headers.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.ErrorIs(t, err, ErrInvalidValue)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestHeadersConfig_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "none", HeadersConfig{}.String())
	assert.Equal(t, "set 2", DefaultHeaders().String())
	assert.Equal(t, "set 1, add 1, remove 2", HeadersConfig{
		Set:    map[string]string{"A": "1"},
		Add:    map[string]string{"B": "2"},
		Remove: []string{"Server", "X-Powered-By"},
	}.String())
	assert.True(t, HeadersConfig{}.IsEmpty())
	assert.False(t, DefaultHeaders().IsEmpty())
}
