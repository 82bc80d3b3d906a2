package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Xhelo-hub/bank-select-converter/internal/profile"
)

func newBanksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "banks",
		Short: "List supported bank profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tBANK\tINPUTS")
			for _, p := range profile.All() {
				inputs := make([]string, len(p.Inputs))
				for i, k := range p.Inputs {
					inputs[i] = string(k)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", p.ID, p.Bank, strings.Join(inputs, ", "))
			}
			return w.Flush()
		},
	}
}
