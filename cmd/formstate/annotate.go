package main

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	formstate "github.com/goliatone/go-formstate"
	"github.com/goliatone/go-formstate/pkg/openapi"
)

func newAnnotateCmd(a *app) *cobra.Command {
	var (
		output    string
		submit    bool
		spec      string
		operation string
	)
	cmd := &cobra.Command{
		Use:   "annotate <in.html>",
		Short: "Write the page back with computed container classes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("annotate: read %s: %w", args[0], err)
			}
			opts, err := a.engineOptions()
			if err != nil {
				return err
			}

			annotate := formstate.AnnotateOptions{Submit: submit}
			if spec != "" {
				op, err := loadOperation(cmd.Context(), spec, operation)
				if err != nil {
					return err
				}
				annotate.Operation = &op
			}

			var buf bytes.Buffer
			session, err := formstate.Annotate(bytes.NewReader(input), &buf, annotate, opts...)
			if err != nil {
				return fmt.Errorf("annotate: %w", err)
			}
			a.logger.Info("annotated",
				zap.String("input", args[0]),
				zap.Int("fields", len(session.Fields())),
				zap.Int("forms", len(session.Forms())),
			)

			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("annotate: write %s: %w", output, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output path (default stdout)")
	cmd.Flags().BoolVar(&submit, "submit", false, "Run submit validation on every form")
	cmd.Flags().StringVar(&spec, "openapi", "", "OpenAPI document providing field formats")
	cmd.Flags().StringVar(&operation, "operation", "", "Operation id within --openapi")
	return cmd
}

func loadOperation(ctx context.Context, path, id string) (openapi.Operation, error) {
	if id == "" {
		return openapi.Operation{}, fmt.Errorf("--operation is required with --openapi")
	}
	doc, err := openapi.Load(ctx, openapi.SourceFromFile(path), nil)
	if err != nil {
		return openapi.Operation{}, err
	}
	return doc.Operation(ctx, id)
}
