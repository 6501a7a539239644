package main

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mikeymoomin/FastGEO/pkg/loader"
	"github.com/mikeymoomin/FastGEO/pkg/orchestrator"
)

func renderCmd() *cobra.Command {
	var (
		output      string
		renderer    string
		format      string
		interactive bool
		sanitize    bool
	)

	cmd := &cobra.Command{
		Use:   "render <definition>",
		Short: "Render a page definition to annotated HTML or llms.txt markdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			loaderOptions := []loader.Option{}
			if format != "" {
				loaderOptions = append(loaderOptions, loader.WithFormat(loader.Format(strings.ToLower(format))))
			}

			model, err := loader.New(loaderOptions...).Load(ctx, loader.SourceFromFile(args[0]))
			if err != nil {
				return err
			}
			if interactive {
				if err := fillMissing(&model); err != nil {
					return err
				}
			}

			slog.Debug("rendering page", "title", model.Title, "renderer", renderer)
			result, err := orchestrator.New().Generate(ctx, orchestrator.Request{
				Definition:        &model,
				Renderer:          renderer,
				SanitizeFragments: sanitize,
			})
			if err != nil {
				return err
			}
			return writeOutput(output, result)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVarP(&renderer, "renderer", "r", "", "renderer to use (vanilla, llmstxt)")
	cmd.Flags().StringVar(&format, "format", "", "definition format (yaml, json); sniffed from the extension by default")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "prompt for missing page metadata")
	cmd.Flags().BoolVar(&sanitize, "sanitize", false, "sanitize section and context-block markup before composing")
	return cmd
}
