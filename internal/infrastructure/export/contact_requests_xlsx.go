package export

import (
	"time"

	"pannel_pintura/internal/domain/entities"
	"pannel_pintura/internal/usecase/interfaces"
)

// ContactRequestXLSXExporter renders leads as a one-sheet workbook.
type ContactRequestXLSXExporter struct {
	Location *time.Location
}

var _ interfaces.IContactRequestExporter = (*ContactRequestXLSXExporter)(nil)

var contactRequestHeader = []string{
	"ID", "Fecha", "Estado", "Nombre", "Email", "Teléfono",
	"Tipo de proyecto", "Propiedad", "Área", "Plazo", "Mensaje",
}

func (e *ContactRequestXLSXExporter) Export(requests []entities.ContactRequest) ([]byte, error) {
	loc := e.Location
	if loc == nil {
		loc = time.UTC
	}

	rows := make([][]any, 0, len(requests))
	for _, r := range requests {
		rows = append(rows, []any{
			r.ID,
			r.CreatedAt.In(loc).Format("2006-01-02 15:04"),
			string(r.Status),
			r.Name,
			r.Email,
			r.Phone,
			r.ProjectType,
			r.Property,
			r.Area,
			r.Timeline,
			r.Message,
		})
	}
	return sheet("Solicitudes", []float64{38, 17, 12, 24, 28, 14, 16, 14, 12, 12, 48}, contactRequestHeader, rows)
}

func (e *ContactRequestXLSXExporter) ContentType() string { return XLSXContentType }

func (e *ContactRequestXLSXExporter) FileExtension() string { return ".xlsx" }
