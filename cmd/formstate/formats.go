package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-formstate/pkg/mask"
	"github.com/goliatone/go-formstate/pkg/openapi"
	"github.com/goliatone/go-formstate/pkg/validator"
)

func newFormatsCmd(a *app) *cobra.Command {
	var body string
	cmd := &cobra.Command{
		Use:   "formats <openapi> <operation>",
		Short: "List request body fields that carry a format, optionally validating a sample body",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			registered := openapi.RegisterFormats(validator.NewRegistry())
			a.logger.Debug("formats registered", zap.Strings("formats", registered))

			op, err := loadOperation(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "FIELD\tFORMAT\tMASK\tREQUIRED")
			for _, f := range op.Fields {
				pattern := mask.Resolve(f.Format).Pattern
				if pattern == "" || pattern == f.Format {
					pattern = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", f.Name, f.Format, pattern, f.Required)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			if body == "" {
				return nil
			}
			raw, err := os.ReadFile(body)
			if err != nil {
				return fmt.Errorf("formats: read %s: %w", body, err)
			}
			var payload map[string]any
			if err := json.Unmarshal(raw, &payload); err != nil {
				return fmt.Errorf("formats: decode %s: %w", body, err)
			}
			if err := op.Validate(payload); err != nil {
				return fmt.Errorf("formats: %s: %w", body, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: body is valid\n", body)
			return nil
		},
	}
	cmd.Flags().StringVar(&body, "body", "", "JSON request body to validate against the operation")
	return cmd
}
