package config

import (
	tperrors "github.com/alexisbeaulieu97/tweakpanel/pkg/errors"
)

// ValidateConfig performs schema validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return tperrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if cfg.Snapshot != "" && cfg.Logging.File != "" && cfg.Snapshot == cfg.Logging.File {
		return tperrors.NewValidationError("snapshot", "snapshot and log file must differ", nil)
	}

	return nil
}
