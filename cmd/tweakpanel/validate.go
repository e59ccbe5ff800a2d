package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tweakpanel/internal/config"
	"github.com/alexisbeaulieu97/tweakpanel/pkg/snapshot"
)

const (
	kindAuto     = "auto"
	kindConfig   = "config"
	kindSnapshot = "snapshot"
)

type validateOptions struct {
	kind string
}

func newValidateCmd() *cobra.Command {
	opts := &validateOptions{kind: kindAuto}

	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a config or snapshot file for errors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.kind, "kind", kindAuto, "File kind: auto, config or snapshot")

	return cmd
}

// detectKind treats files named tweakpanel.yaml as config and everything
// else as a snapshot.
func detectKind(path, kind string) (string, error) {
	switch kind {
	case kindConfig, kindSnapshot:
		return kind, nil
	case kindAuto, "":
		if filepath.Base(path) == config.DefaultFileName {
			return kindConfig, nil
		}
		return kindSnapshot, nil
	}
	return "", fmt.Errorf("unknown kind %q", kind)
}

func runValidate(cmd *cobra.Command, path string, opts *validateOptions) error {
	kind, err := detectKind(path, opts.kind)
	if err != nil {
		return newCommandError("validate", "choosing file kind", err, "Use --kind auto, config or snapshot.")
	}

	switch kind {
	case kindConfig:
		cfg, err := config.ParseConfig(path)
		if err != nil {
			return newCommandError("validate", fmt.Sprintf("checking config %q", path), err, "Fix the reported field and try again.")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is a valid config (version %s)\n", path, cfg.Version)
	default:
		snap, err := snapshot.ReadFile(path)
		if err != nil {
			return newCommandError("validate", fmt.Sprintf("checking snapshot %q", path), err, "Fix the reported line and try again.")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is a valid snapshot (%d values in %d folders)\n", path, snap.Count(), len(snap.Folders))
	}
	return nil
}
