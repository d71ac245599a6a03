package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/pkg/editor"
	"github.com/goliatone/go-formbuilder/pkg/formdef"
	"github.com/goliatone/go-formbuilder/pkg/prompt"
	"github.com/goliatone/go-formbuilder/pkg/renderers/term"
)

func (c *CLI) editCommand() *cobra.Command {
	var (
		form   string
		format string
	)
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a form layout interactively",
		Long:  `Edit a form layout interactively. The final definition is printed when you are done; the input file is left untouched.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			def, err := c.loadDefinition(form)
			if err != nil {
				return err
			}

			session := editor.New(def.Grid(),
				editor.WithPalette(c.palette),
				editor.WithLogger(c.Logger),
				editor.WithHistoryLimit(c.cfg.Editor.HistoryLimit),
			)
			driver := c.driver
			if driver == nil {
				driver = prompt.NewSurveyDriver(cmd.OutOrStdout())
			}
			loop := prompt.NewLoop(session,
				prompt.WithDriver(driver),
				prompt.WithPalette(c.palette),
				prompt.WithRenderer(term.New(term.WithOutput(cmd.OutOrStdout()))),
				prompt.WithTitle(def.Title),
				prompt.WithLogger(c.Logger),
			)

			grid, err := loop.Run(cmd.Context())
			if errors.Is(err, prompt.ErrAborted) {
				c.Logger.Warn("edit aborted, nothing printed")
				return nil
			}
			if err != nil {
				return err
			}
			return printDefinition(cmd, formdef.FromGrid(loop.Title(), grid), format)
		},
	}
	cmd.Flags().StringVarP(&form, "form", "f", "", "form definition file (defaults to the sample form)")
	cmd.Flags().StringVarP(&format, "format", "o", string(formdef.FormatYAML), "output format: json or yaml")
	return cmd
}
