package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tweakpanel/pkg/snapshot"
)

type showOptions struct {
	jsonOutput bool
}

func newShowCmd() *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show <snapshot>",
		Short: "Print every value stored in a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the snapshot as JSON")

	return cmd
}

func runShow(cmd *cobra.Command, path string, opts *showOptions) error {
	snap, err := snapshot.ReadFile(path)
	if err != nil {
		return newCommandError("show", fmt.Sprintf("reading snapshot %q", path), err, "Check the path and run 'tweakpanel validate' on the file.")
	}

	if opts.jsonOutput {
		data, err := snapshot.Encode(snap, snapshot.JSON)
		if err != nil {
			return newCommandError("show", "encoding snapshot", err, "Ensure the snapshot only holds plain values.")
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	if snap.Count() == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "(empty snapshot)")
		return nil
	}
	snap.Walk(func(p string, value any) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %v\n", p, value)
	})
	return nil
}
