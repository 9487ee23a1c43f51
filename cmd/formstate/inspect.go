package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	formstate "github.com/goliatone/go-formstate"
	"github.com/goliatone/go-formstate/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formstate/pkg/report"
)

func newInspectCmd(a *app) *cobra.Command {
	var (
		templateDir string
		templateExt string
	)
	cmd := &cobra.Command{
		Use:   "inspect <in.html>",
		Short: "Print the derived flags of every observed field",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("inspect: %w", err)
			}
			defer file.Close()

			doc, err := formstate.ParseHTML(file)
			if err != nil {
				return fmt.Errorf("inspect: %w", err)
			}
			opts, err := a.engineOptions()
			if err != nil {
				return err
			}
			eng := formstate.NewEngine(opts...)
			session, err := eng.Init(doc)
			if err != nil {
				return fmt.Errorf("inspect: %w", err)
			}
			defer session.Close()

			var tplOpts []gotemplate.Option
			if templateDir != "" {
				tplOpts = append(tplOpts, gotemplate.WithBaseDir(templateDir))
			}
			if templateExt != "" {
				tplOpts = append(tplOpts, gotemplate.WithExtension(templateExt))
			}
			renderer, err := report.NewRenderer(tplOpts...)
			if err != nil {
				return err
			}
			rep := report.Build(args[0], session, eng.Config().MaskAttr)
			return report.Render(renderer, rep, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&templateDir, "templates", "", "Directory holding a custom report template")
	cmd.Flags().StringVar(&templateExt, "template-ext", "", "Template file extension (default .tpl)")
	return cmd
}
