package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Overlay holds the subset of config's tunables a host process may
// override at startup. Nil fields mean "use the package default" —
// Resolve only assigns fields the TOML document actually set.
//
// Split into a file-reading step and a byte-parsing step so tests can
// exercise parsing without touching a filesystem. This runtime carries
// github.com/BurntSushi/toml for host-facing configuration — yaml.v3
// stays reserved for internal/expose's Manifest.
type Overlay struct {
	RecursionLimit      *int `toml:"recursion_limit"`
	FrameGrowthIncr     *int `toml:"frame_growth_increment"`
	DescriptorCacheSize *int `toml:"descriptor_cache_size"`
}

// LoadOverlay reads and parses a TOML overlay file.
func LoadOverlay(path string) (*Overlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config overlay %s: %w", path, err)
	}
	return ParseOverlay(data, path)
}

// ParseOverlay parses overlay content from bytes. path is used only
// for error messages.
func ParseOverlay(data []byte, path string) (*Overlay, error) {
	var o Overlay
	if _, err := toml.Decode(string(data), &o); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &o, nil
}

// Tunables is the resolved set of values a Runtime is actually built
// with: package defaults with any Overlay fields applied on top.
type Tunables struct {
	RecursionLimit      int
	FrameGrowthIncr     int
	DescriptorCacheSize int
}

// Resolve returns the default Tunables with o's non-nil fields applied.
// o may be nil, meaning "no overlay" — just the defaults.
func Resolve(o *Overlay) Tunables {
	t := Tunables{
		RecursionLimit:      DefaultRecursionLimit,
		FrameGrowthIncr:     FrameGrowthIncrement,
		DescriptorCacheSize: DescriptorCacheSize,
	}
	if o == nil {
		return t
	}
	if o.RecursionLimit != nil {
		t.RecursionLimit = *o.RecursionLimit
	}
	if o.FrameGrowthIncr != nil {
		t.FrameGrowthIncr = *o.FrameGrowthIncr
	}
	if o.DescriptorCacheSize != nil {
		t.DescriptorCacheSize = *o.DescriptorCacheSize
	}
	return t
}
