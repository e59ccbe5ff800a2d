package main

import (
	"github.com/alexisbeaulieu97/tweakpanel/internal/config"
	"github.com/alexisbeaulieu97/tweakpanel/internal/logger"
)

// appRuntime bundles the configuration and logger a command runs with.
type appRuntime struct {
	cfg     *config.Config
	log     *logger.Logger
	closers []func() error
}

func (r *appRuntime) Close() error {
	var first error
	for _, fn := range r.closers {
		if err := fn(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// loadRuntime reads the config named by --config, or tweakpanel.yaml in the
// working directory when it exists. Logs go to the configured file; without
// one they go to stderr, or nowhere when quiet is set.
func loadRuntime(flags *rootFlags, quiet bool) (*appRuntime, error) {
	var (
		cfg *config.Config
		err error
	)
	if flags.configPath != "" {
		cfg, err = config.ParseConfig(flags.configPath)
	} else {
		cfg, err = config.Load(config.DefaultFileName)
	}
	if err != nil {
		return nil, newCommandError("load configuration", "parsing config file", err, "Run 'tweakpanel validate <file>' to see every problem in the file.")
	}

	rt := &appRuntime{cfg: cfg}

	if quiet && cfg.Logging.File == "" {
		rt.log = logger.Discard()
		return rt, nil
	}

	rt.log, err = logger.New(logger.Options{
		Level:         cfg.Logging.Level,
		Verbose:       flags.verbose,
		HumanReadable: cfg.Logging.HumanReadable || cfg.Logging.File == "",
		File:          cfg.Logging.File,
	})
	if err != nil {
		return nil, newCommandError("load configuration", "creating logger", err, "Check logging.level and permissions for the logging.file path.")
	}
	rt.closers = append(rt.closers, rt.log.Close)

	return rt, nil
}
