package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Xhelo-hub/bank-select-converter/internal/converter"
	"github.com/Xhelo-hub/bank-select-converter/internal/logger"
)

func newConvertCmd() *cobra.Command {
	var (
		bankID    string
		outputDir string
	)

	cmd := &cobra.Command{
		Use:   "convert <statement.pdf|statement.csv|directory> [...]",
		Short: "Convert statement files to QuickBooks CSV",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			log := logger.FromContext(ctx)
			opts := converter.Options{BankID: bankID, OutputDir: outputDir}

			failures := 0
			for _, arg := range args {
				info, err := os.Stat(arg)
				if err != nil {
					return err
				}

				if info.IsDir() {
					batch, err := converter.ConvertDir(ctx, arg, opts)
					if err != nil {
						return err
					}
					failures += len(batch.Failed)
					log.Info().
						Int("converted", len(batch.Results)).
						Int("failed", len(batch.Failed)).
						Str("dir", arg).
						Msg("batch finished")
					continue
				}

				res, err := converter.Convert(ctx, arg, opts)
				if err != nil {
					log.Error().Str("file", arg).Err(err).Msg("conversion failed")
					failures++
					continue
				}
				if res.Empty() {
					log.Warn().Str("file", arg).Msg("no transactions found")
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), res.OutputPath)
			}

			if failures > 0 {
				return fmt.Errorf("%d file(s) failed to convert", failures)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&bankID, "bank", "b", "", "bank profile ID (default: auto-detect)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "export", "output directory")
	return cmd
}
