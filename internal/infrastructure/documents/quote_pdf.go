package documents

import (
	"fmt"
	"time"

	"pannel_pintura/internal/domain/entities"
	"pannel_pintura/internal/domain/pricing"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"golang.org/x/text/language"
)

var (
	grey       = &props.Color{Red: 90, Green: 90, Blue: 90}
	headerFill = &props.Cell{BackgroundColor: &props.Color{Red: 33, Green: 37, Blue: 41}}
)

// QuoteDocument is what gets printed on a quote PDF.
type QuoteDocument struct {
	Input       entities.QuoteInput
	Result      entities.QuoteResult
	Locale      language.Tag
	GeneratedAt time.Time
}

// QuotePDF renders a one-page quote summary with the price breakdown.
func QuotePDF(d QuoteDocument) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)
	addTitle(m, d)
	addBreakdown(m, d.Result)
	addTotal(m, d)
	addContact(m, d.Input.WithDefaults())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func addTitle(m core.Maroto, d QuoteDocument) {
	in := d.Input.WithDefaults()
	m.AddRows(
		row.New(12).Add(col.New(12).Add(
			text.New("Cotización de pintura", props.Text{Size: 16, Style: fontstyle.Bold, Align: align.Center}),
		)),
		row.New(8).Add(
			col.New(6).Add(text.New(in.ProjectType.Label(), props.Text{Size: 10, Color: grey})),
			col.New(6).Add(text.New("Fecha: "+d.GeneratedAt.Format("02/01/2006"), props.Text{Size: 10, Align: align.Right, Color: grey})),
		),
		row.New(4),
	)
}

func addBreakdown(m core.Maroto, r entities.QuoteResult) {
	white := &props.Color{Red: 255, Green: 255, Blue: 255}
	m.AddRows(row.New(8).Add(
		col.New(8).Add(text.New("Concepto", props.Text{Size: 9, Style: fontstyle.Bold, Color: white, Left: 2, Top: 2})).WithStyle(headerFill),
		col.New(4).Add(text.New("Valor", props.Text{Size: 9, Style: fontstyle.Bold, Color: white, Align: align.Right, Right: 2, Top: 2})).WithStyle(headerFill),
	))
	for _, line := range r.Breakdown {
		m.AddRows(row.New(7).Add(
			col.New(8).Add(text.New(line.Label, props.Text{Size: 9, Left: 2, Top: 1.5})),
			col.New(4).Add(text.New(line.Value, props.Text{Size: 9, Align: align.Right, Right: 2, Top: 1.5})),
		))
	}
	m.AddRows(row.New(4))
}

func addTotal(m core.Maroto, d QuoteDocument) {
	m.AddRows(row.New(10).Add(
		col.New(8).Add(text.New("Total estimado", props.Text{Size: 12, Style: fontstyle.Bold, Left: 2})),
		col.New(4).Add(text.New(pricing.PriceLabel(d.Result, d.Locale), props.Text{Size: 12, Style: fontstyle.Bold, Align: align.Right, Right: 2})),
	))
	if d.Result.IsValid {
		m.AddRows(row.New(7).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Garantía: %d años", d.Result.WarrantyYears), props.Text{Size: 9, Left: 2, Color: grey}),
		)))
	}
	m.AddRows(row.New(6))
}

func addContact(m core.Maroto, in entities.QuoteInput) {
	if in.ContactName == "" && in.ContactPhone == "" {
		return
	}
	m.AddRows(
		row.New(7).Add(col.New(12).Add(text.New("Datos de contacto", props.Text{Size: 10, Style: fontstyle.Bold, Left: 2}))),
		row.New(6).Add(col.New(12).Add(text.New("Nombre: "+in.ContactName, props.Text{Size: 9, Left: 2}))),
		row.New(6).Add(col.New(12).Add(text.New("Teléfono: "+in.ContactPhone, props.Text{Size: 9, Left: 2}))),
	)
}
