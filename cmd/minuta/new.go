package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/minutekit/minuta/internal/app"
)

func addNew(topLevel *cobra.Command, root *rootOptions) {
	var templatePath string
	var title string

	cmd := &cobra.Command{
		Use:   "new [name]",
		Short: "Create a session from the configured section template.",
		Example: `
minuta new standup
minuta new retro --template retro.yaml --title "Sprint 12 retro"
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := ""
			if len(args) > 0 {
				id = args[0]
			}
			a, err := app.New(app.Options{
				ConfigPath:   root.configPath,
				StorageDir:   root.dataDir,
				SessionID:    id,
				TemplatePath: templatePath,
				Title:        title,
				CreateOnly:   true,
			})
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.Save(); err != nil {
				return err
			}

			bold := color.New(color.Bold)
			fmt.Fprintf(color.Output, "Created session %s\n", bold.Sprint(a.SessionID()))
			for _, sec := range a.Editor().Document().Sections {
				fmt.Fprintf(color.Output, "  - %s\n", sec.Title)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&templatePath, "template", "t", "", "YAML template overriding the configured sections")
	cmd.Flags().StringVar(&title, "title", "", "document title")

	topLevel.AddCommand(cmd)
}
