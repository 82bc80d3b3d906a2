// Package commands wires the CLI. Each subcommand is a thin shell around
// the converter; all statement logic lives in the internal packages.
package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Xhelo-hub/bank-select-converter/internal/logger"
)

var (
	flagLogLevel string
	flagPretty   bool
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bank-select-converter",
		Short: "Convert Albanian bank statements to QuickBooks-compatible CSV",
		Long: `bank-select-converter reads PDF and CSV statements from Albanian banks
(BKT, Credins, Intesa, OTP, Paysera, ProCredit, Raiffeisen, Tirana Bank,
Union Bank) and writes normalized Date,Description,Debit,Credit ledgers.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log := logger.New(flagLogLevel, flagPretty)
			cmd.SetContext(logger.WithContext(cmd.Context(), log))
		},
	}

	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&flagPretty, "pretty", true, "human-readable log output")

	root.AddCommand(newConvertCmd())
	root.AddCommand(newBanksCmd())
	root.AddCommand(newServeCmd())
	return root
}

// Execute runs the CLI and returns the process exit code.
func Execute(ctx context.Context) int {
	root := newRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		log := logger.New(flagLogLevel, flagPretty)
		log.Error().Err(err).Msg("command failed")
		return 1
	}
	return 0
}
