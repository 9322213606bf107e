package config

import (
	"fmt"
	"strings"
)

// Validate checks the config for:
//   - Required fields (version, at least one graph name)
//   - Duplicate graph names (each input file is processed once)
//   - Sane worker counts
func Validate(cfg *Config) error {
	if cfg.Version == "" {
		return fmt.Errorf("config: version is required")
	}
	var errs []string

	if len(cfg.Batch.Graphs) == 0 {
		errs = append(errs, "batch.graphs must not be empty")
	}
	seen := make(map[string]int) // name → first index
	for i, name := range cfg.Batch.Graphs {
		if name == "" {
			errs = append(errs, fmt.Sprintf("batch.graphs[%d]: name is required", i))
			continue
		}
		if prev, ok := seen[name]; ok {
			errs = append(errs, fmt.Sprintf("duplicate graph %q (first at index %d, again at %d)", name, prev, i))
		} else {
			seen[name] = i
		}
	}
	if cfg.Batch.Workers < 1 {
		errs = append(errs, fmt.Sprintf("batch.workers must be >= 1, got %d", cfg.Batch.Workers))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
