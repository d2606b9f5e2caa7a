package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNilMap(t *testing.T) {
	c := New(nil)
	assert.NotNil(t, c.Raw())
	assert.False(t, c.Has("anything"))
}

func TestString(t *testing.T) {
	c := New(map[string]any{"name": "games", "count": 3})

	assert.Equal(t, "games", c.String("name", "default"))
	assert.Equal(t, "default", c.String("missing", "default"))
	assert.Equal(t, "default", c.String("count", "default")) // wrong type
}

func TestBool(t *testing.T) {
	c := New(map[string]any{"enabled": true, "name": "games"})

	assert.True(t, c.Bool("enabled", false))
	assert.False(t, c.Bool("missing", false))
	assert.True(t, c.Bool("name", true)) // wrong type keeps default
}

func TestInt(t *testing.T) {
	c := New(map[string]any{
		"int":      42,
		"int64":    int64(43),
		"float":    44.0,
		"fraction": 44.5,
		"name":     "games",
	})

	assert.Equal(t, 42, c.Int("int", 0))
	assert.Equal(t, 43, c.Int("int64", 0))
	assert.Equal(t, 44, c.Int("float", 0))
	assert.Equal(t, 0, c.Int("fraction", 0)) // fractional part rejected
	assert.Equal(t, 0, c.Int("name", 0))
	assert.Equal(t, 7, c.Int("missing", 7))
}

func TestFloat(t *testing.T) {
	c := New(map[string]any{"f": 1.5, "i": 2})

	assert.Equal(t, 1.5, c.Float("f", 0))
	assert.Equal(t, 2.0, c.Float("i", 0))
	assert.Equal(t, 9.0, c.Float("missing", 9.0))
}

func TestDuration(t *testing.T) {
	c := New(map[string]any{
		"str":     "1m30s",
		"int":     5,
		"float":   1.5,
		"native":  2 * time.Second,
		"invalid": "not a duration",
	})

	assert.Equal(t, 90*time.Second, c.Duration("str", 0))
	assert.Equal(t, 5*time.Second, c.Duration("int", 0))
	assert.Equal(t, 1500*time.Millisecond, c.Duration("float", 0))
	assert.Equal(t, 2*time.Second, c.Duration("native", 0))
	assert.Equal(t, time.Minute, c.Duration("invalid", time.Minute))
	assert.Equal(t, time.Minute, c.Duration("missing", time.Minute))
}

func TestFromYAML(t *testing.T) {
	c, err := FromYAML([]byte("capacity: 32\nstore: ./games.db\n"))
	require.NoError(t, err)

	assert.Equal(t, 32, c.Int("capacity", 0))
	assert.Equal(t, "./games.db", c.String("store", ""))
}

func TestFromYAMLInvalid(t *testing.T) {
	_, err := FromYAML([]byte("capacity: [unterminated"))
	assert.Error(t, err)
}

func TestFromJSON(t *testing.T) {
	c, err := FromJSON([]byte(`{"capacity": 32, "store": "./games.db"}`))
	require.NoError(t, err)

	assert.Equal(t, 32, c.Int("capacity", 0))
	assert.Equal(t, "./games.db", c.String("store", ""))
}

func TestFromJSONInvalid(t *testing.T) {
	_, err := FromJSON([]byte(`{"capacity":`))
	assert.Error(t, err)
}

func TestFromTOML(t *testing.T) {
	c, err := FromTOML([]byte("capacity = 32\nstore = \"./games.db\"\n"))
	require.NoError(t, err)

	assert.Equal(t, 32, c.Int("capacity", 0))
	assert.Equal(t, "./games.db", c.String("store", ""))
}

func TestFromTOMLInvalid(t *testing.T) {
	_, err := FromTOML([]byte("capacity = = 32"))
	assert.Error(t, err)
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()

	cases := []struct {
		name    string
		content string
	}{
		{"settings.yaml", "capacity: 16\n"},
		{"settings.yml", "capacity: 16\n"},
		{"settings.json", `{"capacity": 16}`},
		{"settings.toml", "capacity = 16\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name)
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0o644))

			c, err := FromFile(path)
			require.NoError(t, err)
			assert.Equal(t, 16, c.Int("capacity", 0))
		})
	}
}

func TestFromFileUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.ini")
	require.NoError(t, os.WriteFile(path, []byte("capacity=16"), 0o644))

	_, err := FromFile(path)
	assert.ErrorContains(t, err, "unsupported config file extension")
}

func TestFromFileMissing(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
