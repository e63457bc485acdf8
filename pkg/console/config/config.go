// Package config loads the console overlay settings from a TOML file.
// Settings are host tunables only; the buffer core receives its layout
// parameters separately, derived from the live viewport.
package config

import (
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// Settings are the user-adjustable console parameters.
type Settings struct {
	// FrameSize is the console frame as a fraction of the window, width
	// then height. 1,1 covers the full window.
	FrameSize [2]float64 `toml:"framesize"`

	// BGTransparency is the background alpha in [0,1].
	BGTransparency float64 `toml:"bg_transparency"`

	// TextScale scales the console font relative to the host UI font.
	TextScale float64 `toml:"textscale"`

	DispOnStartup      bool `toml:"disponstartup"`
	CheckForUpdates    bool `toml:"checkforupdates"`
	DoResizeRoutine    bool `toml:"doresizeroutine"`
	DoScrollingRoutine bool `toml:"doscrollingroutine"`
	Verbose            bool `toml:"toggleverbose"`
}

// minFrameSize is the smallest usable frame fraction; anything narrower
// cannot fit the prompt row.
var minFrameSize = [2]float64{0.3, 0.25}

// Default returns the settings used when no config file exists.
func Default() Settings {
	return Settings{
		FrameSize:          [2]float64{1, 0.4},
		BGTransparency:     0.86,
		TextScale:          1,
		DispOnStartup:      false,
		CheckForUpdates:    true,
		DoResizeRoutine:    true,
		DoScrollingRoutine: true,
	}
}

// DefaultPath returns the per-user config location.
func DefaultPath() (string, error) {
	return xdg.ConfigFile("devconsole/config.toml")
}

// Load reads settings from path. A missing file is not an error: defaults
// are returned. Malformed TOML or out-of-range values are.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	s.clamp()
	if err := s.validate(); err != nil {
		return s, err
	}
	return s, nil
}

// clamp enforces the minimum frame size the way the original console did,
// silently raising undersized frames instead of failing.
func (s *Settings) clamp() {
	if s.FrameSize[0] < minFrameSize[0] {
		s.FrameSize[0] = minFrameSize[0]
	}
	if s.FrameSize[1] < minFrameSize[1] {
		s.FrameSize[1] = minFrameSize[1]
	}
	if s.FrameSize[0] > 1 {
		s.FrameSize[0] = 1
	}
	if s.FrameSize[1] > 1 {
		s.FrameSize[1] = 1
	}
}

func (s *Settings) validate() error {
	if s.BGTransparency < 0 || s.BGTransparency > 1 {
		return fmt.Errorf("config: bg_transparency %v out of range [0,1]", s.BGTransparency)
	}
	if s.TextScale <= 0 {
		return fmt.Errorf("config: textscale must be positive, got %v", s.TextScale)
	}
	return nil
}
