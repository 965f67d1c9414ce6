package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func addList(topLevel *cobra.Command, root *rootOptions) {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List stored sessions, newest first.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := openStore(root)
			if err != nil {
				return err
			}
			sessions := st.Sessions(context.Background())
			if len(sessions) == 0 {
				color.New(color.Faint, color.Italic).Fprintln(color.Output, "no sessions")
				return nil
			}

			width := 0
			for _, s := range sessions {
				if len(s.ID) > width {
					width = len(s.ID)
				}
			}

			bold := color.New(color.Bold)
			faint := color.New(color.Faint)
			for _, s := range sessions {
				title := s.Doc.Title
				if title == "" {
					title = faint.Sprint("untitled")
				}
				fmt.Fprintf(color.Output, "%s  %s  %s\n",
					bold.Sprintf("%-*s", width, s.ID),
					faint.Sprint(s.SavedAt.Local().Format("2006-01-02 15:04")),
					title)
			}
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
