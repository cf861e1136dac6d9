package config

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// EnvPrefix is prepended to every environment variable, e.g.
// MUXSHAPE_PROBER or MUXSHAPE_REDIS_ADDR.
const EnvPrefix = "muxshape"

// LoadEnv applies MUXSHAPE_* environment variables over cfg. Unset
// variables leave the current value in place. Only prefixed names are read;
// a bare PASSWORD or ENVIRONMENT in the shell is ignored.
func LoadEnv(cfg *Config) error {
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return errors.Wrap(err, "read environment")
	}
	return nil
}
