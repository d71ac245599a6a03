package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/pkg/editor"
	"github.com/goliatone/go-formbuilder/pkg/formdef"
	"github.com/goliatone/go-formbuilder/pkg/layout"
)

func (c *CLI) showCommand() *cobra.Command {
	var (
		form   string
		format string
	)
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a normalised form definition",
		RunE: func(cmd *cobra.Command, _ []string) error {
			def, err := c.loadDefinition(form)
			if err != nil {
				return err
			}
			return printDefinition(cmd, def, format)
		},
	}
	cmd.Flags().StringVarP(&form, "form", "f", "", "form definition file (defaults to the sample form)")
	cmd.Flags().StringVarP(&format, "format", "o", string(formdef.FormatYAML), "output format: json or yaml")
	return cmd
}

func (c *CLI) paletteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "palette",
		Short: "List the field types that can be dragged onto a form",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var b strings.Builder
			for _, entry := range c.palette.List() {
				fmt.Fprintf(&b, "%-16s %-18s %s\n", entry.ID, entry.Title, entry.Type)
			}
			return writeString(cmd.OutOrStdout(), b.String())
		},
	}
}

func (c *CLI) targetsCommand() *cobra.Command {
	var (
		form string
		drag dragFlags
	)
	cmd := &cobra.Command{
		Use:   "targets",
		Short: "List the drop targets offered while dragging a field",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !drag.set() {
				return errors.New("targets: one of --field or --palette is required")
			}
			def, err := c.loadDefinition(form)
			if err != nil {
				return err
			}
			item, err := c.dragged(def.Grid(), drag)
			if err != nil {
				return err
			}

			targets := layout.Targets(def.Grid(), item)
			if len(targets) == 0 {
				return writeString(cmd.OutOrStdout(), "no drop targets")
			}
			var b strings.Builder
			for _, target := range targets {
				fmt.Fprintf(&b, "%d:%d\t%s\n", target.Row, target.Column, target)
			}
			return writeString(cmd.OutOrStdout(), b.String())
		},
	}
	cmd.Flags().StringVarP(&form, "form", "f", "", "form definition file (defaults to the sample form)")
	drag.register(cmd)
	return cmd
}

func (c *CLI) moveCommand() *cobra.Command {
	var (
		form   string
		format string
		drag   dragFlags
		row    int
		column int
	)
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Drop a field onto a target and print the resulting definition",
		Long: `Drop a placed field (--field) or a new palette field (--palette) onto
row --row, column --column. Column 0 opens a new row above --row; use
"targets" to list what the policy allows.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !drag.set() {
				return errors.New("move: one of --field or --palette is required")
			}
			def, err := c.loadDefinition(form)
			if err != nil {
				return err
			}

			session := editor.New(def.Grid(), editor.WithPalette(c.palette), editor.WithLogger(c.Logger))
			if drag.palette != "" {
				err = session.OnPaletteDragStart(drag.palette)
			} else {
				err = session.OnDragStart(drag.field)
			}
			if err != nil {
				return err
			}
			grid, err := session.OnDrop(layout.Target{Row: row, Column: column})
			if err != nil {
				return err
			}
			return printDefinition(cmd, formdef.FromGrid(def.Title, grid), format)
		},
	}
	cmd.Flags().StringVarP(&form, "form", "f", "", "form definition file (defaults to the sample form)")
	cmd.Flags().StringVarP(&format, "format", "o", string(formdef.FormatYAML), "output format: json or yaml")
	cmd.Flags().IntVar(&row, "row", 0, "1-based target row")
	cmd.Flags().IntVar(&column, "column", 0, "1-based target column, 0 for a new row")
	drag.register(cmd)
	_ = cmd.MarkFlagRequired("row")
	return cmd
}

func printDefinition(cmd *cobra.Command, def formdef.Definition, format string) error {
	f, err := formdef.ParseFormat(format)
	if err != nil {
		return err
	}
	out, err := formdef.Encode(def, f)
	if err != nil {
		return err
	}
	return writeString(cmd.OutOrStdout(), string(out))
}
