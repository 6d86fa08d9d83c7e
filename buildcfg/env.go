package buildcfg

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Runtime holds settings read at process start that do not change which
// build this is.
type Runtime struct {
	// VRMode is the user's preference for starting in VR on builds that can
	// run either way.
	VRMode   bool   `env:"KEYSTONE_VR_MODE"`
	LogLevel string `env:"KEYSTONE_LOG_LEVEL" envDefault:"warn"`
}

// FromEnv layers KEYSTONE_* variables over base. Unset variables leave the
// base value in place.
func FromEnv(base Metadata) (Metadata, error) {
	m := base
	if err := env.Parse(&m); err != nil {
		return Metadata{}, fmt.Errorf("parse env: %w", err)
	}
	return m, nil
}

// RuntimeFromEnv loads runtime settings from the environment.
func RuntimeFromEnv() (Runtime, error) {
	var rt Runtime
	if err := env.Parse(&rt); err != nil {
		return Runtime{}, fmt.Errorf("parse env: %w", err)
	}
	return rt, nil
}
