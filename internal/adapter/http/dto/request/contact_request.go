package request

import "pannel_pintura/internal/domain/entities"

// ContactRequestRequest is the direct-contact form payload. Field rules live
// in the domain so every surface reports the same per-field messages.
type ContactRequestRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	ProjectType string `json:"project_type"`
	Property    string `json:"property"`
	Area        string `json:"area"`
	Timeline    string `json:"timeline"`
	Message     string `json:"message"`
}

func (r ContactRequestRequest) ToEntity() entities.ContactRequest {
	return entities.ContactRequest{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		ProjectType: r.ProjectType,
		Property:    r.Property,
		Area:        r.Area,
		Timeline:    r.Timeline,
		Message:     r.Message,
	}
}
