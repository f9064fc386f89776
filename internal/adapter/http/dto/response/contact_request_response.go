package response

import (
	"time"

	"pannel_pintura/internal/domain/entities"
)

type ContactRequestResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	ProjectType string    `json:"project_type"`
	Property    string    `json:"property"`
	Area        string    `json:"area"`
	Timeline    string    `json:"timeline"`
	Message     string    `json:"message,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ContactRequestListResponse struct {
	Items []ContactRequestResponse `json:"items"`
	Total int                      `json:"total"`
}

func FromContactRequest(c entities.ContactRequest) ContactRequestResponse {
	return ContactRequestResponse{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		ProjectType: c.ProjectType,
		Property:    c.Property,
		Area:        c.Area,
		Timeline:    c.Timeline,
		Message:     c.Message,
		Status:      string(c.Status),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func FromContactRequests(cs []entities.ContactRequest) ContactRequestListResponse {
	items := make([]ContactRequestResponse, 0, len(cs))
	for _, c := range cs {
		items = append(items, FromContactRequest(c))
	}
	return ContactRequestListResponse{Items: items, Total: len(items)}
}
