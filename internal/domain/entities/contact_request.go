package entities

import "time"

// ContactRequestStatus is the follow-up state of a lead sent through the
// direct-contact form.
type ContactRequestStatus string

const (
	ContactRequestStatusPendiente  ContactRequestStatus = "pendiente"
	ContactRequestStatusContactado ContactRequestStatus = "contactado"
	ContactRequestStatusDescartado ContactRequestStatus = "descartado"
)

// Closed option lists of the direct-contact form.
var (
	ContactProjectTypes = []string{"interior", "exterior", "ambos"}
	PropertyTypes       = []string{"casa", "apartamento", "oficina", "local", "otro"}
	Timelines           = []string{"urgente", "pronto", "normal", "flexible"}
)

// ContactRequest is a lead submitted through the direct-contact form.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Area stays free text: visitors write "120", "aprox. 80 m²" and the like.
type ContactRequest struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Email       string               `json:"email"`
	Phone       string               `json:"phone"`
	ProjectType string               `json:"project_type"`
	Property    string               `json:"property"`
	Area        string               `json:"area"`
	Timeline    string               `json:"timeline"`
	Message     string               `json:"message"`
	Status      ContactRequestStatus `json:"status"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}
