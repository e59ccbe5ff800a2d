package config

// DefaultFileName is looked up in the working directory when no --config
// flag is given.
const DefaultFileName = "tweakpanel.yaml"

// Config represents the tweakpanel.yaml document.
type Config struct {
	Version  string  `yaml:"version" validate:"required,semver"`
	Panel    Panel   `yaml:"panel,omitempty"`
	Logging  Logging `yaml:"logging,omitempty"`
	Theme    Theme   `yaml:"theme,omitempty"`
	Snapshot string  `yaml:"snapshot,omitempty"`
	// FPS is the rate at which the terminal UI ticks the frame scheduler.
	FPS int `yaml:"fps,omitempty" validate:"min=1,max=120"`
}

// Panel holds the construction options of the root panel.
type Panel struct {
	Title        string `yaml:"title,omitempty" validate:"max=256"`
	Width        int    `yaml:"width,omitempty" validate:"min=0,max=4096"`
	CloseFolders bool   `yaml:"close_folders,omitempty"`
}

// Logging configures the CLI logger. Logs go to File when set, which keeps
// them off the terminal while the UI is running.
type Logging struct {
	Level         string `yaml:"level,omitempty" validate:"loglevel"`
	File          string `yaml:"file,omitempty"`
	HumanReadable bool   `yaml:"human_readable,omitempty"`
}

// Theme colours the terminal UI. Any form accepted by colour controllers is
// allowed.
type Theme struct {
	Accent string `yaml:"accent,omitempty" validate:"omitempty,panelcolor"`
	Muted  string `yaml:"muted,omitempty" validate:"omitempty,panelcolor"`
	Error  string `yaml:"error,omitempty" validate:"omitempty,panelcolor"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{Version: "1.0"}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills unset fields in place.
func ApplyDefaults(cfg *Config) {
	if cfg.Panel.Title == "" {
		cfg.Panel.Title = "Controls"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.FPS == 0 {
		cfg.FPS = 30
	}
	if cfg.Theme.Accent == "" {
		cfg.Theme.Accent = "#2cc9ff"
	}
	if cfg.Theme.Muted == "" {
		cfg.Theme.Muted = "#6c6c6c"
	}
	if cfg.Theme.Error == "" {
		cfg.Theme.Error = "#ff5f5f"
	}
}
