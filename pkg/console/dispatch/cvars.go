package dispatch

import (
	"image/color"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Cvars is a table of named configuration variables with string values.
// Hosts seed it with their tunables (colors, toggles) and read values back
// after set commands. Reads and writes are guarded so a background task may
// inspect values while the console mutates them.
type Cvars struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewCvars returns an empty table.
func NewCvars() *Cvars {
	return &Cvars{values: make(map[string]string)}
}

// Get retrieves a variable value.
func (c *Cvars) Get(name string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.values[name]
	return v, ok
}

// Set stores a variable value.
func (c *Cvars) Set(name, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[name] = value
}

// Names returns all variable names in alphabetical order.
func (c *Cvars) Names() []string {
	c.mu.RLock()
	names := make([]string, 0, len(c.values))
	for name := range c.values {
		names = append(names, name)
	}
	c.mu.RUnlock()

	sort.Strings(names)
	return names
}

// ParseRGBA parses "R,G,B,A" into a color. Values 0-255.
func ParseRGBA(s string) (color.RGBA, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return color.RGBA{}, false
	}
	var vals [4]uint8
	for i := 0; i < 4; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return color.RGBA{}, false
		}
		vals[i] = uint8(n)
	}
	return color.RGBA{R: vals[0], G: vals[1], B: vals[2], A: vals[3]}, true
}

// FormatRGBA renders a color as the "R,G,B,A" form ParseRGBA accepts.
func FormatRGBA(c color.RGBA) string {
	return strconv.Itoa(int(c.R)) + "," + strconv.Itoa(int(c.G)) + "," +
		strconv.Itoa(int(c.B)) + "," + strconv.Itoa(int(c.A))
}
