package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func addRm(topLevel *cobra.Command, root *rootOptions) {
	cmd := &cobra.Command{
		Use:   "rm <name>",
		Short: "Delete a stored session.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := openStore(root)
			if err != nil {
				return err
			}
			if err := st.Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(color.Output, "Removed session %s\n", color.New(color.Bold).Sprint(args[0]))
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
