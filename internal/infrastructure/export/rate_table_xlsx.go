package export

import (
	"sort"

	"pannel_pintura/internal/domain/entities"
)

// RateTableXLSX lists every rate as (tabla, clave, valor) rows so the
// published prices can be reviewed in a spreadsheet.
func RateTableXLSX(t entities.RateTable) ([]byte, error) {
	rows := make([][]any, 0, 16)

	for _, p := range entities.ProjectTypes {
		for _, f := range entities.FinishTiers {
			if v, ok := t.Base[p][f]; ok {
				rows = append(rows, []any{"Precio base (Bs/m²)", p.Label() + " / " + f.Label(), v})
			}
		}
	}

	rooms := make([]int, 0, len(t.Room))
	for n := range t.Room {
		rooms = append(rooms, n)
	}
	sort.Ints(rooms)
	for _, n := range rooms {
		rows = append(rows, []any{"Habitaciones", n, t.Room[n]})
	}

	for _, c := range entities.WallConditions {
		if v, ok := t.Condition[c]; ok {
			rows = append(rows, []any{"Estado paredes", c.Label(), v})
		}
	}
	for _, u := range entities.Urgencies {
		if v, ok := t.Urgency[u]; ok {
			rows = append(rows, []any{"Urgencia", u.Label(), v})
		}
	}

	return sheet("Tarifas", []float64{22, 28, 10}, []string{"Tabla", "Clave", "Valor"}, rows)
}
