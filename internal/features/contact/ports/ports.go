package ports

import (
	"context"

	"holo-lookup/internal/features/contact/domain"
)

// ContactService defines the primary port for contact form submissions.
type ContactService interface {
	Submit(ctx context.Context, sub domain.Submission) (*domain.Submission, error)
}

// Inbox stores accepted submissions until staff follow up on them.
type Inbox interface {
	Save(ctx context.Context, sub *domain.Submission) error
	Get(ctx context.Context, id string) (*domain.Submission, error)
}
