package commands

import (
	"fmt"
	"os"
	"sort"

	"pannel_pintura/internal/domain/entities"
	"pannel_pintura/internal/infrastructure/export"

	"github.com/spf13/cobra"
)

func tarifasCmd(a *app) *cobra.Command {
	var xlsxOut string

	cmd := &cobra.Command{
		Use:   "tarifas",
		Short: "Print the active rate table, or export it with --xlsx",
		RunE: func(cmd *cobra.Command, args []string) error {
			t := a.quotes.Rates()
			if xlsxOut != "" {
				b, err := export.RateTableXLSX(t)
				if err != nil {
					return err
				}
				if err := os.WriteFile(xlsxOut, b, 0o644); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Tarifas exportadas a %s\n", xlsxOut)
				return nil
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Precio base (Bs/m²)")
			for _, p := range entities.ProjectTypes {
				for _, f := range entities.FinishTiers {
					fmt.Fprintf(out, "  %-18s %-8s %v\n", p.Label(), f.Label(), t.Base[p][f])
				}
			}

			rooms := make([]int, 0, len(t.Room))
			for n := range t.Room {
				rooms = append(rooms, n)
			}
			sort.Ints(rooms)
			fmt.Fprintln(out, "Habitaciones")
			for _, n := range rooms {
				fmt.Fprintf(out, "  %-27d x%v\n", n, t.Room[n])
			}

			fmt.Fprintln(out, "Estado paredes")
			for _, c := range entities.WallConditions {
				fmt.Fprintf(out, "  %-27s x%v\n", c.Label(), t.Condition[c])
			}
			fmt.Fprintln(out, "Urgencia")
			for _, u := range entities.Urgencies {
				fmt.Fprintf(out, "  %-27s x%v\n", u.Label(), t.Urgency[u])
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&xlsxOut, "xlsx", "", "write the table to this .xlsx file")
	return cmd
}
