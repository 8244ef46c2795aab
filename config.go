package tree

import (
	"fmt"
	"math"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// FileConfig is the layout of a --config file. Every key is optional.
//
//	all = true
//	dirs_first = true
//	exclude = ["node_modules", "*.o"]
//	level = 3
type FileConfig struct {
	All       bool     `toml:"all"`
	DirsOnly  bool     `toml:"dirs_only"`
	Classify  bool     `toml:"classify"`
	DirsFirst bool     `toml:"dirs_first"`
	Color     bool     `toml:"color"`
	GitIgnore bool     `toml:"gitignore"`
	Exclude   []string `toml:"exclude"`
	Include   []string `toml:"include"`
	Level     *int     `toml:"level"`
}

// LoadFileConfig reads and validates a TOML config file. Unknown keys are
// an error.
func LoadFileConfig(path string) (*FileConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	var cfg FileConfig
	dec := toml.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.Level != nil && (*cfg.Level < 1 || *cfg.Level > math.MaxInt32) {
		return nil, fmt.Errorf("config %s: invalid level: %d", path, *cfg.Level)
	}
	return &cfg, nil
}
