package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/minutekit/minuta/internal/export/exportfile"
	"github.com/minutekit/minuta/internal/export/markdown"
)

func addExport(topLevel *cobra.Command, root *rootOptions) {
	var outPath string
	var auto bool

	cmd := &cobra.Command{
		Use:   "export <name>",
		Short: "Render a session as markdown.",
		Long: `Render a session as markdown, to stdout by default.

With --output the markdown is written to the given file. With --auto it
is written into the configured export directory under a name derived
from the document title and today's date.`,
		Example: `
minuta export standup
minuta export standup -o standup.md
minuta export standup --auto
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, st, err := openStore(root)
			if err != nil {
				return err
			}
			doc, err := st.Load(args[0])
			if err != nil {
				return err
			}
			text := markdown.Serialize(doc)

			switch {
			case auto:
				name := exportfile.SuggestedName(doc, time.Now())
				path, err := exportfile.Save(cfg.ExportDir(), name, text)
				if err != nil {
					return err
				}
				fmt.Fprintf(color.Output, "Wrote %s\n", color.New(color.Bold).Sprint(path))
			case outPath != "":
				path, err := exportfile.Save(filepath.Dir(outPath), filepath.Base(outPath), text)
				if err != nil {
					return err
				}
				fmt.Fprintf(color.Output, "Wrote %s\n", color.New(color.Bold).Sprint(path))
			default:
				fmt.Print(text)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write markdown to this file instead of stdout")
	cmd.Flags().BoolVarP(&auto, "auto", "a", false, "write into the configured export directory with a suggested name")

	topLevel.AddCommand(cmd)
}
