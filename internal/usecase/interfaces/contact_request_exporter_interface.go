package interfaces

import "pannel_pintura/internal/domain/entities"

// IContactRequestExporter renders leads into a downloadable document.
type IContactRequestExporter interface {
	Export(requests []entities.ContactRequest) ([]byte, error)
	ContentType() string
	FileExtension() string
}
