package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	tperrors "github.com/alexisbeaulieu97/tweakpanel/pkg/errors"
)

func TestGetValidatorIsShared(t *testing.T) {
	t.Parallel()

	require.Same(t, GetValidator(), GetValidator())
}

func TestValidateConfig(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(cfg *Config)
		field  string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "bad version", mutate: func(cfg *Config) { cfg.Version = "beta" }, field: "version"},
		{name: "negative width", mutate: func(cfg *Config) { cfg.Panel.Width = -1 }, field: "panel.width"},
		{name: "fps too high", mutate: func(cfg *Config) { cfg.FPS = 500 }, field: "fps"},
		{name: "bad accent", mutate: func(cfg *Config) { cfg.Theme.Accent = "blue-ish" }, field: "theme.accent"},
		{name: "short hex accent", mutate: func(cfg *Config) { cfg.Theme.Accent = "#abc" }},
		{name: "upper-case level", mutate: func(cfg *Config) { cfg.Logging.Level = "WARN" }},
		{
			name: "snapshot equals log file",
			mutate: func(cfg *Config) {
				cfg.Snapshot = "out.json"
				cfg.Logging.File = "out.json"
			},
			field: "snapshot",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			tc.mutate(cfg)
			err := ValidateConfig(cfg)

			if tc.field == "" {
				require.NoError(t, err)
				return
			}

			var validationErr *tperrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tc.field, validationErr.Field)
		})
	}
}

func TestValidateConfigNil(t *testing.T) {
	t.Parallel()

	require.Error(t, ValidateConfig(nil))
}
