// Package cfg holds the parameters of the viewer. It avoids to recompile the
// program for each molecule or window setting: everything is read from a TOML
// configuration file, and sensible defaults are used when no file is given.
package cfg

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml"
)

// Cfg is a structure where the parameters of the viewer are stored. It can be
// instanced through the New method (TOML file) or the Default method. FileOut
// is optional: when it is empty, no load report is written.
type Cfg struct {
	FileIn  string `toml:"file_in"`
	FileOut string `toml:"file_out"`

	Width  int32  `toml:"width"`
	Height int32  `toml:"height"`
	Title  string `toml:"title"`
	FPS    int32  `toml:"fps"`

	// CameraMode selects the control scheme: "translate" (keys move the
	// camera along the world axes) or "orbit" (third person camera).
	CameraMode  string  `toml:"camera_mode"`
	CameraSpeed float32 `toml:"camera_speed"`

	// Background is the clear color as an RRGGBBAA hex string.
	Background string `toml:"background"`
}

// Default returns the built-in configuration: an 800x600 window reading
// molecule.xyz with the translate camera.
func Default() Cfg {
	return Cfg{
		FileIn:      "molecule.xyz",
		Width:       800,
		Height:      600,
		Title:       "molview",
		FPS:         60,
		CameraMode:  "translate",
		CameraSpeed: 1.0,
		Background:  "181818AA",
	}
}

// New returns an instance of the Cfg structure. It opens and reads the
// configuration file given in argument. The file must use the TOML format.
// Missing fields keep their default value.
func New(path string) (Cfg, error) {
	f, err := os.Open(path)
	if err != nil {
		return Cfg{}, err
	}
	defer f.Close()

	cfg := Default()
	dec := toml.NewDecoder(f)
	err = dec.Decode(&cfg)
	if err != nil {
		return Cfg{}, err
	}

	err = cfg.check()
	if err != nil {
		return Cfg{}, err
	}

	return cfg, nil
}

// check validates the fields that the viewer cannot use as-is.
func (c Cfg) check() error {
	if c.FileIn == "" {
		return errors.New("file_in must not be empty")
	}

	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size must be positive (got %dx%d)", c.Width, c.Height)
	}

	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive (got %d)", c.FPS)
	}

	if c.CameraMode != "translate" && c.CameraMode != "orbit" {
		return fmt.Errorf("camera mode `%s` doesn't exist", c.CameraMode)
	}

	if c.CameraSpeed <= 0 {
		return fmt.Errorf("camera speed must be positive (got %g)", c.CameraSpeed)
	}

	_, err := c.BackgroundRGBA()
	return err
}

// BackgroundRGBA parses the Background field into a packed 0xRRGGBBAA value.
func (c Cfg) BackgroundRGBA() (uint32, error) {
	if len(c.Background) != 8 {
		return 0, fmt.Errorf("background must be 8 hex digits (RRGGBBAA; got `%s`)", c.Background)
	}

	v, err := strconv.ParseUint(c.Background, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("background: %w", err)
	}

	return uint32(v), nil
}
