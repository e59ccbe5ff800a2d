package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tweakpanel/pkg/snapshot"
)

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <a> <b>",
		Short: "Show a unified diff between two snapshots",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, args[0], args[1])
		},
	}

	return cmd
}

func runDiff(cmd *cobra.Command, left, right string) error {
	a, err := snapshot.ReadFile(left)
	if err != nil {
		return newCommandError("diff", fmt.Sprintf("reading snapshot %q", left), err, "Check the path and run 'tweakpanel validate' on the file.")
	}
	b, err := snapshot.ReadFile(right)
	if err != nil {
		return newCommandError("diff", fmt.Sprintf("reading snapshot %q", right), err, "Check the path and run 'tweakpanel validate' on the file.")
	}

	out, err := snapshot.Diff(a, b, left, right)
	if err != nil {
		return newCommandError("diff", "rendering diff", err, "Ensure both snapshots only hold plain values.")
	}
	if out == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "Snapshots are identical.")
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
