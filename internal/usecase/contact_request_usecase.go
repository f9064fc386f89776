package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"pannel_pintura/internal/domain/entities"
	"pannel_pintura/internal/domain/pricing"
	"pannel_pintura/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrContactRequestNotFound   = errors.New("contact request not found")
	ErrInvalidContactRequest    = errors.New("invalid contact request")
	ErrInvalidContactRequestID  = errors.New("invalid contact request id")
	ErrInvalidStatusFilter      = errors.New("invalid status filter")
	ErrContactRequestNotPending = errors.New("contact request is no longer pending")
)

// SubmissionError carries the per-field messages of a rejected submission.
// errors.Is(err, ErrInvalidContactRequest) holds for it.
type SubmissionError struct {
	Fields pricing.ValidationErrors
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("%s: %d field(s)", ErrInvalidContactRequest, len(e.Fields))
}

func (e *SubmissionError) Unwrap() error { return ErrInvalidContactRequest }

// IContactRequestUseCase handles direct-contact leads.
//
// Lifecycle: pendiente -> contactado | descartado. Both targets are final.
type IContactRequestUseCase interface {
	Submit(ctx context.Context, req entities.ContactRequest) (entities.ContactRequest, error)
	GetByID(ctx context.Context, id string) (entities.ContactRequest, error)
	List(ctx context.Context, status string) ([]entities.ContactRequest, error)
	MarkContacted(ctx context.Context, id string) (entities.ContactRequest, error)
	Discard(ctx context.Context, id string) (entities.ContactRequest, error)
	Export(ctx context.Context, status string) (ExportFile, error)
}

// ExportFile is a rendered lead export ready to be downloaded.
type ExportFile struct {
	Name        string
	ContentType string
	Content     []byte
}

type ContactRequestUseCase struct {
	repo     interfaces.IContactRequestRepository
	exporter interfaces.IContactRequestExporter
	now      func() time.Time
}

var _ IContactRequestUseCase = (*ContactRequestUseCase)(nil)

func NewContactRequestUseCase(repo interfaces.IContactRequestRepository, exporter interfaces.IContactRequestExporter) *ContactRequestUseCase {
	return &ContactRequestUseCase{repo: repo, exporter: exporter, now: time.Now}
}

func (u *ContactRequestUseCase) Submit(ctx context.Context, req entities.ContactRequest) (entities.ContactRequest, error) {
	if fields := pricing.ValidateSubmission(req); !fields.Valid() {
		return entities.ContactRequest{}, &SubmissionError{Fields: fields}
	}

	now := u.now().UTC()
	lead := entities.ContactRequest{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		Phone:       strings.TrimSpace(req.Phone),
		ProjectType: req.ProjectType,
		Property:    req.Property,
		Area:        strings.TrimSpace(req.Area),
		Timeline:    req.Timeline,
		Message:     strings.TrimSpace(req.Message),
		Status:      entities.ContactRequestStatusPendiente,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.repo.Create(ctx, lead)
}

func (u *ContactRequestUseCase) GetByID(ctx context.Context, id string) (entities.ContactRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ContactRequest{}, ErrInvalidContactRequestID
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ContactRequest{}, err
	}
	if r.ID == "" {
		return entities.ContactRequest{}, ErrContactRequestNotFound
	}
	return r, nil
}

// List returns leads newest first.
func (u *ContactRequestUseCase) List(ctx context.Context, status string) ([]entities.ContactRequest, error) {
	st, err := parseStatusFilter(status)
	if err != nil {
		return nil, err
	}

	out, err := u.repo.List(ctx, st)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (u *ContactRequestUseCase) MarkContacted(ctx context.Context, id string) (entities.ContactRequest, error) {
	return u.close(ctx, id, entities.ContactRequestStatusContactado)
}

func (u *ContactRequestUseCase) Discard(ctx context.Context, id string) (entities.ContactRequest, error) {
	return u.close(ctx, id, entities.ContactRequestStatusDescartado)
}

func (u *ContactRequestUseCase) close(ctx context.Context, id string, to entities.ContactRequestStatus) (entities.ContactRequest, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ContactRequest{}, err
	}
	if current.Status != entities.ContactRequestStatusPendiente {
		return entities.ContactRequest{}, ErrContactRequestNotPending
	}

	updated, err := u.repo.UpdateStatus(ctx, current.ID, entities.ContactRequestStatusPendiente, to)
	if err != nil {
		return entities.ContactRequest{}, err
	}
	// Lost a race with another admin.
	if updated.ID == "" {
		return entities.ContactRequest{}, ErrContactRequestNotPending
	}
	return updated, nil
}

func (u *ContactRequestUseCase) Export(ctx context.Context, status string) (ExportFile, error) {
	leads, err := u.List(ctx, status)
	if err != nil {
		return ExportFile{}, err
	}

	content, err := u.exporter.Export(leads)
	if err != nil {
		return ExportFile{}, fmt.Errorf("export contact requests: %w", err)
	}
	return ExportFile{
		Name:        "solicitudes_" + u.now().UTC().Format("20060102_150405") + u.exporter.FileExtension(),
		ContentType: u.exporter.ContentType(),
		Content:     content,
	}, nil
}

func parseStatusFilter(s string) (entities.ContactRequestStatus, error) {
	switch st := entities.ContactRequestStatus(strings.ToLower(strings.TrimSpace(s))); st {
	case "", entities.ContactRequestStatusPendiente, entities.ContactRequestStatusContactado, entities.ContactRequestStatusDescartado:
		return st, nil
	}
	return "", ErrInvalidStatusFilter
}
