package cli

import (
	"fmt"

	theme "github.com/goliatone/go-theme"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/internal/server"
	"github.com/goliatone/go-formbuilder/pkg/editor"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/renderers/html"
	"github.com/goliatone/go-formbuilder/pkg/renderers/term"
)

func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr string
		form string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the editor HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr == "" {
				addr = c.cfg.Server.Addr
			}
			srv, err := c.newServer(form)
			if err != nil {
				return err
			}
			return srv.ListenAndServe(cmd.Context(), addr, c.cfg.ReadTimeout(), c.cfg.WriteTimeout())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (defaults to server.addr)")
	cmd.Flags().StringVar(&form, "form", "", "form definition new sessions start from")
	return cmd
}

func (c *CLI) newServer(form string) (*server.Server, error) {
	seed, err := c.loadDefinition(form)
	if err != nil {
		return nil, err
	}
	themeCfg, err := c.cfg.RendererConfig()
	if err != nil {
		return nil, err
	}
	htmlRenderer, err := html.New()
	if err != nil {
		return nil, fmt.Errorf("serve: %w", err)
	}

	return server.New(
		server.WithLogger(c.Logger),
		server.WithPalette(c.palette),
		server.WithRenderers(render.NewRegistry(htmlRenderer, term.New())),
		server.WithRenderOptions(render.RenderOptions{Theme: withDefaultStylesheet(themeCfg)}),
		server.WithSeed(seed),
		server.WithSessionOptions(editor.WithHistoryLimit(c.cfg.Editor.HistoryLimit)),
	), nil
}

// withDefaultStylesheet points the canvas stylesheet at the embedded one
// served under /assets/ unless the theme provides its own.
func withDefaultStylesheet(cfg *theme.RendererConfig) *theme.RendererConfig {
	const builtin = "/assets/" + html.StylesheetFile
	if cfg == nil {
		cfg = &theme.RendererConfig{}
	}
	resolve := cfg.AssetURL
	out := *cfg
	out.AssetURL = func(key string) string {
		if resolve != nil {
			if url := resolve(key); url != "" {
				return url
			}
		}
		if key == html.StylesheetAsset {
			return builtin
		}
		return ""
	}
	return &out
}
