package enum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTheme_Toggle(t *testing.T) {
	tests := []struct {
		current  Theme
		expected Theme
	}{
		{ThemeLight, ThemeDark},
		{ThemeDark, ThemeLight},
	}

	for _, tc := range tests {
		t.Run(tc.current.String()+"->"+tc.expected.String(), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.current.Toggle())
			assert.Equal(t, tc.current, tc.current.Toggle().Toggle(), "toggle is an involution")
		})
	}
}

func TestTheme_Valid(t *testing.T) {
	assert.True(t, ThemeLight.Valid())
	assert.True(t, ThemeDark.Valid())
	assert.False(t, Theme{}.Valid())
}

func TestParseTheme(t *testing.T) {
	tests := []struct {
		in      string
		want    Theme
		wantErr bool
	}{
		{"light", ThemeLight, false},
		{"dark", ThemeDark, false},
		{"DARK", ThemeDark, false},
		{" light\n", ThemeLight, false},
		{"", Theme{}, true},
		{"system", Theme{}, true},
		{"blue", Theme{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseTheme(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTheme_JSON(t *testing.T) {
	var v struct {
		Theme Theme `json:"theme"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"theme":"dark"}`), &v))
	assert.Equal(t, ThemeDark, v.Theme)

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"theme":"dark"}`, string(out))

	err = json.Unmarshal([]byte(`{"theme":"sepia"}`), &v)
	require.Error(t, err)
}
