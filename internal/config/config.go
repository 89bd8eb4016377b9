// Package config loads the tool's optional on-disk configuration file,
// using github.com/pelletier/go-toml/v2 the way the retrieval pack's
// XTLS-Xray-core uses it for structured settings. A config file is
// entirely optional: every field here can also be set via its
// corresponding CLI flag, and flags win when both are present.
package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/joshuafuller/dog/internal/dogerr"
)

// File is the shape of an optional config.toml: defaults for flags the user
// would otherwise repeat on every invocation.
type File struct {
	Nameservers []string `toml:"nameservers"`
	Transport   string   `toml:"transport"` // "udp", "tcp", "tls", "https", "auto"
	EDNS        string   `toml:"edns"`      // "disable", "hide", "show"
	BufSize     uint16   `toml:"bufsize"`
}

// Load reads and parses path. A missing file is not an error: it returns
// the zero File so callers fall back entirely to flags/defaults.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return File{}, nil
		}
		return File{}, &dogerr.ArgumentError{Field: "config", Message: err.Error()}
	}

	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return File{}, &dogerr.ArgumentError{Field: "config", Message: err.Error()}
	}
	return f, nil
}
