package config

import (
	"bytes"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/pelletier/go-toml/v2"

	"github.com/moyn-dev/moyn-cli/internal/fileutil"
	"github.com/moyn-dev/moyn-cli/internal/services"
)

// Save writes cfg to path as TOML. The file holds an API token, so it is
// replaced atomically with 0600 permissions, while an exclusive lock on
// path+".lock" serializes concurrent writers.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return services.Wrap(services.ErrConfiguration, "config", "save", "nil config", nil)
	}
	target, err := expandPath(path)
	if err != nil {
		return services.Wrap(services.ErrConfiguration, "config", "save", "", err)
	}
	if target == "" {
		if target, err = DefaultConfigPath(); err != nil {
			return services.Wrap(services.ErrConfiguration, "config", "save", "", err)
		}
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return services.Wrap(services.ErrConfiguration, "config", "save", "encode", err)
	}

	if err := ensureDir(filepath.Dir(target)); err != nil {
		return services.Wrap(services.ErrConfiguration, "config", "save", "create config directory", err)
	}
	lock := flock.New(target + ".lock")
	if err := lock.Lock(); err != nil {
		return services.Wrap(services.ErrConfiguration, "config", "save", "acquire lock", err)
	}
	defer lock.Unlock() //nolint:errcheck

	if err := fileutil.WriteAtomic(target, buf.Bytes(), 0o600); err != nil {
		return services.Wrap(services.ErrConfiguration, "config", "save", "", err)
	}
	return nil
}
