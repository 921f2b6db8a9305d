package cfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCfg(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, "molecule.xyz", c.FileIn)
	assert.Equal(t, "", c.FileOut)
	assert.Equal(t, int32(800), c.Width)
	assert.Equal(t, int32(600), c.Height)
	assert.Equal(t, "translate", c.CameraMode)

	bg, err := c.BackgroundRGBA()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x181818AA), bg)
}

func TestNew(t *testing.T) {
	c, err := New(writeCfg(t, `
file_in = "benzene.xyz"
camera_mode = "orbit"
background = "FF0000FF"
`))
	require.NoError(t, err)

	assert.Equal(t, "benzene.xyz", c.FileIn)
	assert.Equal(t, "orbit", c.CameraMode)

	bg, err := c.BackgroundRGBA()
	require.NoError(t, err)
	assert.Equal(t, uint32(0xFF0000FF), bg)

	// Fields absent from the file keep their default.
	assert.Equal(t, int32(800), c.Width)
	assert.Equal(t, int32(60), c.FPS)
}

func TestNewErrors(t *testing.T) {
	bodies := map[string]string{
		"empty file_in":    `file_in = ""`,
		"zero width":       `width = 0`,
		"negative fps":     `fps = -1`,
		"bad camera mode":  `camera_mode = "fly"`,
		"zero speed":       `camera_speed = 0.0`,
		"short background": `background = "FFF"`,
		"bad background":   `background = "xy0000FF"`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			_, err := New(writeCfg(t, body))
			assert.Error(t, err)
		})
	}
}

func TestNewMissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope.toml"))
	assert.True(t, os.IsNotExist(err))
}
