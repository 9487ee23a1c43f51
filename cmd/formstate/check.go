package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formstate/internal/prompt"
	"github.com/goliatone/go-formstate/pkg/validator"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [format] [value]",
		Short: "Validate a value against a format rule, prompting when omitted",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := validator.NewRegistry()
			out := cmd.OutOrStdout()

			if len(args) == 2 {
				res := prompt.Check(reg, args[0], args[1])
				fmt.Fprintln(out, res.String())
				if !res.Valid {
					return fmt.Errorf("check: %s value is invalid", res.Format)
				}
				return nil
			}

			format := ""
			if len(args) == 1 {
				format = args[0]
			}
			_, err := prompt.Session(cmd.Context(), prompt.NewSurveyDriver(), reg, format, out)
			return err
		},
	}
}
