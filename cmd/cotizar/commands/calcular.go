package commands

import (
	"encoding/json"
	"fmt"

	"pannel_pintura/internal/domain/pricing"

	"github.com/spf13/cobra"
)

func calcularCmd(a *app, flags *quoteFlags) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "calcular",
		Short: "Compute a quote and print its breakdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := flags.input()
			if err != nil {
				return err
			}
			res, err := a.quotes.Compute(in)
			if err != nil {
				return visitorError(err)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}

			for _, line := range res.Breakdown {
				fmt.Fprintf(out, "%-24s %s\n", line.Label, line.Value)
			}
			fmt.Fprintf(out, "%-24s %s\n", "Total", pricing.PriceLabel(res, a.locale))
			if res.IsValid {
				fmt.Fprintf(out, "%-24s %d años\n", "Garantía", res.WarrantyYears)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full result as JSON")
	return cmd
}
