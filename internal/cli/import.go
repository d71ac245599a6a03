package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/pkg/formdef"
	"github.com/goliatone/go-formbuilder/pkg/openapi"
)

func (c *CLI) importCommand() *cobra.Command {
	var (
		operation string
		format    string
		list      bool
		noHeader  bool
		timeout   time.Duration
	)
	cmd := &cobra.Command{
		Use:   "import <openapi-document>",
		Short: "Seed a form definition from an OpenAPI operation request body",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := openapi.Fetch(cmd.Context(), args[0], openapi.WithHTTPFallback(timeout))
			if err != nil {
				return err
			}

			if list {
				ops, err := openapi.Operations(cmd.Context(), data)
				if err != nil {
					return err
				}
				var b strings.Builder
				for _, op := range ops {
					fmt.Fprintf(&b, "%-24s %-6s %s\n", op.ID, op.Method, op.Path)
				}
				return writeString(cmd.OutOrStdout(), b.String())
			}

			if operation == "" {
				return errors.New("import: --operation is required (use --list to see them)")
			}
			var opts []openapi.Option
			if noHeader {
				opts = append(opts, openapi.WithoutHeader())
			}
			def, err := openapi.Import(cmd.Context(), data, operation, opts...)
			if err != nil {
				return err
			}
			c.Logger.Debug("operation imported", "operation", operation, "fields", def.Grid().TotalFields())
			return printDefinition(cmd, def, format)
		},
	}
	cmd.Flags().StringVar(&operation, "operation", "", "operationId to import")
	cmd.Flags().StringVarP(&format, "format", "o", string(formdef.FormatYAML), "output format: json or yaml")
	cmd.Flags().BoolVar(&list, "list", false, "list operations instead of importing")
	cmd.Flags().BoolVar(&noHeader, "no-header", false, "do not add a header row from the operation summary")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "timeout for remote documents")
	return cmd
}
