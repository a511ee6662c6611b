package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	stackerrors "github.com/matzehuels/stacktower/pkg/errors"
)

// Config holds the experiment-loop parameters the run command drives its
// generator and strategies with. Every field has a built-in default
// (defaultConfig) matching the original experiment's hard-coded constants;
// a TOML file overrides whichever fields it sets.
type Config struct {
	V                int     `toml:"v"`
	Alpha            int     `toml:"alpha"`
	OutdegBound      int     `toml:"outdeg_bound"`
	TargetDensity    float64 `toml:"target_density"`
	PurgeProbability float64 `toml:"purge_probability"`
	InstanceLength   int     `toml:"instance_length"`
	Attempts         int     `toml:"attempts"`
	CheckpointStride int     `toml:"checkpoint_stride"`
	Seed             int64   `toml:"seed"`
	Strategy         string  `toml:"strategy"`
}

// defaultConfig mirrors main.cpp's hard-coded NODES/ALPHA/EDGE_DENSITY/
// PURGE_PROB/INSTANCE_LEN/ATTEMPTS_TARGET/STATS_CHECKPOINT constants. Seed 0
// means "derive from wall-clock time at run start", matching the source's
// getMillisSinceEpoch() default.
func defaultConfig() Config {
	return Config{
		V:                40,
		Alpha:            1,
		OutdegBound:      2,
		TargetDensity:    0.8,
		PurgeProbability: 0.0,
		InstanceLength:   1000,
		Attempts:         100,
		CheckpointStride: 10,
		Seed:             0,
		Strategy:         "uniform",
	}
}

// loadConfig resolves the config file search order (explicit path flag,
// then $STACKTOWER_CONFIG, then $XDG_CONFIG_HOME/stacktower/config.toml)
// and decodes it on top of defaultConfig. When no file is found at any of
// those locations, the defaults are returned unchanged.
func loadConfig(explicitPath string) (Config, error) {
	cfg := defaultConfig()

	path := explicitPath
	if path == "" {
		path = os.Getenv("STACKTOWER_CONFIG")
	}
	if path == "" {
		if dir, err := configDir(); err == nil {
			candidate := filepath.Join(dir, "config.toml")
			if _, statErr := os.Stat(candidate); statErr == nil {
				path = candidate
			}
		}
	}
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, stackerrors.Wrap(stackerrors.ErrCodeInvalidConfig, err, "decode config %s", path)
	}
	return cfg, nil
}

// configDir returns $XDG_CONFIG_HOME/stacktower, falling back to
// ~/.config/stacktower when XDG_CONFIG_HOME is unset.
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
