// Package contact contains the public contact form use cases.
package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/blessing-poultries/backend/internal/application/adapter"
	"github.com/blessing-poultries/backend/internal/domain/entity"
	domainerror "github.com/blessing-poultries/backend/internal/domain/error"
)

type stubContactRepo struct {
	stored []*entity.ContactMessage
	err    error
}

func (r *stubContactRepo) Create(_ context.Context, message *entity.ContactMessage) error {
	if r.err != nil {
		return r.err
	}
	r.stored = append(r.stored, message)
	return nil
}

func (r *stubContactRepo) FindByID(_ context.Context, _ string) (*entity.ContactMessage, error) {
	return nil, nil
}

func (r *stubContactRepo) List(_ context.Context, limit, offset int) ([]*entity.ContactMessage, error) {
	if offset >= len(r.stored) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.stored) {
		end = len(r.stored)
	}
	return r.stored[offset:end], nil
}

type stubEmailService struct {
	queued []adapter.QueueContactNotificationInput
	err    error
}

func (s *stubEmailService) QueueContactNotification(_ context.Context, input adapter.QueueContactNotificationInput) error {
	if s.err != nil {
		return s.err
	}
	s.queued = append(s.queued, input)
	return nil
}

func validSubmission() SubmitMessageInput {
	return SubmitMessageInput{
		Name:    "Ngozi Okafor",
		Email:   "ngozi@example.com",
		Phone:   "+2348012345678",
		Subject: "Bulk egg order",
		Body:    "I would like to order 50 crates weekly.",
	}
}

func TestSubmitMessage(t *testing.T) {
	t.Run("stores the message and queues a notification", func(t *testing.T) {
		repo := &stubContactRepo{}
		emails := &stubEmailService{}
		uc := NewSubmitMessageUseCase(repo, emails)

		message, err := uc.Execute(context.Background(), validSubmission())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(repo.stored) != 1 {
			t.Fatalf("expected 1 stored message, got %d", len(repo.stored))
		}
		if len(emails.queued) != 1 {
			t.Fatalf("expected 1 queued notification, got %d", len(emails.queued))
		}
		if emails.queued[0].MessageID != message.ID.String() {
			t.Error("expected the notification to reference the stored message")
		}
	})

	t.Run("missing fields are rejected", func(t *testing.T) {
		uc := NewSubmitMessageUseCase(&stubContactRepo{}, nil)
		bad := validSubmission()
		bad.Body = ""

		_, err := uc.Execute(context.Background(), bad)
		if !errors.Is(err, domainerror.ErrMissingContactFields) {
			t.Errorf("expected ErrMissingContactFields, got %v", err)
		}
	})

	t.Run("malformed email is rejected", func(t *testing.T) {
		uc := NewSubmitMessageUseCase(&stubContactRepo{}, nil)
		bad := validSubmission()
		bad.Email = "not-an-address"

		_, err := uc.Execute(context.Background(), bad)
		if !errors.Is(err, domainerror.ErrInvalidContactEmail) {
			t.Errorf("expected ErrInvalidContactEmail, got %v", err)
		}
	})

	t.Run("queue failure does not fail the submission", func(t *testing.T) {
		repo := &stubContactRepo{}
		emails := &stubEmailService{err: errors.New("queue full")}
		uc := NewSubmitMessageUseCase(repo, emails)

		if _, err := uc.Execute(context.Background(), validSubmission()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.stored) != 1 {
			t.Error("expected the message to be stored despite the queue failure")
		}
	})
}

func TestListMessages(t *testing.T) {
	repo := &stubContactRepo{}
	submit := NewSubmitMessageUseCase(repo, nil)
	for range [3]struct{}{} {
		if _, err := submit.Execute(context.Background(), validSubmission()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	t.Run("defaults the page size", func(t *testing.T) {
		messages, err := NewListMessagesUseCase(repo).Execute(context.Background(), ListMessagesInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(messages) != 3 {
			t.Errorf("expected 3 messages, got %d", len(messages))
		}
	})

	t.Run("honors limit and offset", func(t *testing.T) {
		messages, err := NewListMessagesUseCase(repo).Execute(context.Background(), ListMessagesInput{Limit: 2, Offset: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(messages) != 1 {
			t.Errorf("expected 1 message, got %d", len(messages))
		}
	})
}
