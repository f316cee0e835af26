package service

import (
	"context"
	"fmt"
	"time"

	"holo-lookup/internal/core/logger"
	"holo-lookup/internal/features/contact/domain"
	"holo-lookup/internal/features/contact/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContactServiceImpl implements ports.ContactService.
type ContactServiceImpl struct {
	inbox ports.Inbox
	now   func() time.Time
}

// NewContactService creates a ContactServiceImpl storing into inbox.
func NewContactService(inbox ports.Inbox) *ContactServiceImpl {
	return &ContactServiceImpl{
		inbox: inbox,
		now:   time.Now,
	}
}

// Submit validates the submission, assigns it an id and stores it.
func (s *ContactServiceImpl) Submit(ctx context.Context, sub domain.Submission) (*domain.Submission, error) {
	if err := sub.Validate(); err != nil {
		return nil, err
	}

	sub.ID = uuid.NewString()
	sub.CreatedAt = s.now().UTC()

	if err := s.inbox.Save(ctx, &sub); err != nil {
		return nil, fmt.Errorf("service: failed to store submission: %w", err)
	}

	logger.Named("contact").Info("Contact submission received",
		zap.String("submission_id", sub.ID),
		zap.String("service", sub.Service),
	)

	return &sub, nil
}
