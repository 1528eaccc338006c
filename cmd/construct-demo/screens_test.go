package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScreens(t *testing.T) {
	set, err := parseScreens([]byte(`
start: menu
screens:
  - id: menu
    title: Menu
    body: |
      first line
      second line
    links:
      - label: Help
        target: help
  - id: help
    title: Help
`))
	require.NoError(t, err)

	assert.Equal(t, "menu", set.start)
	menu, ok := set.get("menu")
	require.True(t, ok)
	assert.Equal(t, "Menu", menu.Title)
	assert.Equal(t, "first line\nsecond line\n", menu.Body)
	assert.Equal(t, []link{{Label: "Help", Target: "help"}}, menu.Links)
}

func TestParseScreens_DefaultStart(t *testing.T) {
	set, err := parseScreens([]byte(`
screens:
  - id: a
    title: A
  - id: b
    title: B
`))
	require.NoError(t, err)
	assert.Equal(t, "a", set.start)
}

func TestParseScreens_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"empty", "screens: []", "no screens defined"},
		{"missing id", "screens:\n  - title: A", "screen 0: missing id"},
		{"duplicate id", "screens:\n  - id: a\n  - id: a", `screen "a": duplicate id`},
		{"unknown start", "start: x\nscreens:\n  - id: a", `start screen "x" not defined`},
		{"dangling link", "screens:\n  - id: a\n    links:\n      - label: Go\n        target: nowhere", `targets unknown screen "nowhere"`},
		{"bad yaml", "screens: [", "parse screens"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseScreens([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadScreens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "screens.yaml")
	require.NoError(t, os.WriteFile(path, []byte("screens:\n  - id: only\n    title: Only\n"), 0o644))

	set, err := loadScreens(path)
	require.NoError(t, err)
	assert.Equal(t, "only", set.start)

	_, err = loadScreens(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read screens")
}

func TestDefaultScreens(t *testing.T) {
	set := defaultScreens()
	assert.Equal(t, "home", set.start)
	assert.Len(t, set.byID, 3)
}

func TestHistory(t *testing.T) {
	var h history
	_, ok := h.pop()
	assert.False(t, ok)

	h.push("a")
	h.push("b")
	assert.Equal(t, 2, h.len())

	top, ok := h.pop()
	assert.True(t, ok)
	assert.Equal(t, "b", top)
	assert.Equal(t, 1, h.len())
}
