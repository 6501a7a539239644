package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mikeymoomin/FastGEO/pkg/chunk"
	"github.com/mikeymoomin/FastGEO/pkg/token"
)

func chunkCmd() *cobra.Command {
	var (
		output    string
		maxTokens int
		overlap   int
		strategy  string
		estimator string
		stats     bool
	)

	cmd := &cobra.Command{
		Use:   "chunk <html-file>",
		Short: "Split HTML content into token-bounded chunks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch chunk.OverlapStrategy(strategy) {
			case chunk.OverlapElements, chunk.OverlapTokens:
			default:
				return fmt.Errorf("unknown strategy %q (want elements or tokens)", strategy)
			}

			options := []chunk.Option{
				chunk.WithMaxTokens(maxTokens),
				chunk.WithOverlap(overlap),
				chunk.WithOverlapStrategy(chunk.OverlapStrategy(strategy)),
			}
			switch estimator {
			case "words":
			case "runes":
				options = append(options, chunk.WithEstimator(token.Runes))
			default:
				return fmt.Errorf("unknown estimator %q (want words or runes)", estimator)
			}

			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %q: %w", args[0], err)
			}

			chunks, err := chunk.New(options...).Split(string(content))
			if err != nil {
				return err
			}
			slog.Debug("content chunked", "chunks", len(chunks))

			if stats {
				var b strings.Builder
				for _, c := range chunks {
					fmt.Fprintf(&b, "chunk %d: %d tokens, %d bytes\n", c.Index, c.Tokens, len(c.HTML))
				}
				return writeOutput(output, []byte(b.String()))
			}
			return writeOutput(output, []byte(chunk.WrapHTML(chunks)))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().IntVar(&maxTokens, "max-tokens", chunk.DefaultMaxTokens, "token budget per chunk")
	cmd.Flags().IntVar(&overlap, "overlap", chunk.DefaultOverlap, "overlap carried between chunks")
	cmd.Flags().StringVar(&strategy, "strategy", string(chunk.OverlapElements), "overlap strategy (elements, tokens)")
	cmd.Flags().StringVar(&estimator, "estimator", "words", "token estimator (words, runes)")
	cmd.Flags().BoolVar(&stats, "stats", false, "print per-chunk statistics instead of markup")
	return cmd
}
