package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/renderers/html"
	"github.com/goliatone/go-formbuilder/pkg/renderers/term"
)

func (c *CLI) renderCommand() *cobra.Command {
	var (
		form     string
		renderer string
		output   string
		active   string
		locale   string
		drag     dragFlags
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the form canvas, optionally mid-drag",
		RunE: func(cmd *cobra.Command, _ []string) error {
			def, err := c.loadDefinition(form)
			if err != nil {
				return err
			}
			item, err := c.dragged(def.Grid(), drag)
			if err != nil {
				return err
			}
			registry, err := c.renderers(cmd)
			if err != nil {
				return err
			}
			r, err := registry.Get(renderer)
			if err != nil {
				return err
			}
			themeCfg, err := c.cfg.RendererConfig()
			if err != nil {
				return err
			}

			out, err := r.Render(cmd.Context(), render.View{
				Title:       def.Title,
				Grid:        def.Grid(),
				Dragged:     item,
				ActiveField: active,
			}, render.RenderOptions{Theme: themeCfg, Locale: locale})
			if err != nil {
				return err
			}

			if output != "" {
				if err := os.WriteFile(output, out, 0o644); err != nil {
					return fmt.Errorf("render: write %s: %w", output, err)
				}
				c.Logger.Info("canvas written", "path", output, "renderer", r.Name())
				return nil
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().StringVarP(&form, "form", "f", "", "form definition file (defaults to the sample form)")
	cmd.Flags().StringVarP(&renderer, "renderer", "r", "term", "renderer: term or html")
	cmd.Flags().StringVar(&output, "output", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&active, "active", "", "internal name of the selected field")
	cmd.Flags().StringVar(&locale, "locale", "", "locale for canvas texts")
	drag.register(cmd)
	return cmd
}

func (c *CLI) renderers(cmd *cobra.Command) (*render.Registry, error) {
	htmlRenderer, err := html.New()
	if err != nil {
		return nil, err
	}
	return render.NewRegistry(htmlRenderer, term.New(term.WithOutput(cmd.OutOrStdout()))), nil
}
