package interfaces

import (
	"context"

	"pannel_pintura/internal/domain/entities"
)

// IContactRequestRepository abstracts DynamoDB persistence for leads.
//
// Not-found reads and updates return an empty ContactRequest (ID == "").
type IContactRequestRepository interface {
	Create(ctx context.Context, r entities.ContactRequest) (entities.ContactRequest, error)
	GetByID(ctx context.Context, id string) (entities.ContactRequest, error)
	// List returns every lead, or only those in status when it is non-empty.
	List(ctx context.Context, status entities.ContactRequestStatus) ([]entities.ContactRequest, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.ContactRequestStatus) (entities.ContactRequest, error)
}
