package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/minutekit/minuta/internal/app"
	"github.com/minutekit/minuta/internal/export/markdown"
)

func addImport(topLevel *cobra.Command, root *rootOptions) {
	cmd := &cobra.Command{
		Use:   "import <file.md> [name]",
		Short: "Create a session from a markdown file.",
		Example: `
minuta import notes.md
minuta import notes.md thursday-sync
`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			doc := markdown.Parse(string(data))

			id := ""
			if len(args) > 1 {
				id = args[1]
			}
			a, err := app.New(app.Options{
				ConfigPath: root.configPath,
				StorageDir: root.dataDir,
				SessionID:  id,
				CreateOnly: true,
			})
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.Editor().ReplaceDocument(doc); err != nil {
				return err
			}
			if err := a.Save(); err != nil {
				return err
			}

			bold := color.New(color.Bold)
			fmt.Fprintf(color.Output, "Imported %s as session %s (%d sections, %d blocks)\n",
				args[0], bold.Sprint(a.SessionID()), len(doc.Sections), doc.BlockCount())
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
