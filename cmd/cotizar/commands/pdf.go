package commands

import (
	"fmt"
	"os"
	"time"

	"pannel_pintura/internal/infrastructure/documents"

	"github.com/spf13/cobra"
)

func pdfCmd(a *app, flags *quoteFlags) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "pdf",
		Short: "Write the quote as a PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := flags.input()
			if err != nil {
				return err
			}
			res, err := a.quotes.Compute(in)
			if err != nil {
				return visitorError(err)
			}

			b, err := documents.QuotePDF(documents.QuoteDocument{
				Input:       in,
				Result:      res,
				Locale:      a.locale,
				GeneratedAt: time.Now(),
			})
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, b, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cotización guardada en %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "cotizacion.pdf", "output file")
	return cmd
}
