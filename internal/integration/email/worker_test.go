package email

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/blessing-poultries/backend/internal/application/adapter"
	"github.com/blessing-poultries/backend/internal/domain/entity"
	domainerror "github.com/blessing-poultries/backend/internal/domain/error"
	"github.com/blessing-poultries/backend/internal/integration/email/templates"
)

// fakeQueue is an in-memory EmailQueueRepository for worker tests.
type fakeQueue struct {
	jobs      []*entity.EmailJob
	createErr error
}

func (q *fakeQueue) Create(ctx context.Context, job *entity.EmailJob) error {
	if q.createErr != nil {
		return q.createErr
	}
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *fakeQueue) GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error) {
	ready := make([]*entity.EmailJob, 0)
	now := time.Now().UTC()
	for _, job := range q.jobs {
		if job.Status == entity.EmailStatusPending && !job.ScheduledAt.After(now) {
			ready = append(ready, job)
			if len(ready) >= limit {
				break
			}
		}
	}
	return ready, nil
}

func (q *fakeQueue) Update(ctx context.Context, job *entity.EmailJob) error {
	for i, existing := range q.jobs {
		if existing.ID == job.ID {
			q.jobs[i] = job
			return nil
		}
	}
	return errors.New("job not found")
}

func (q *fakeQueue) GetByID(ctx context.Context, id uuid.UUID) (*entity.EmailJob, error) {
	for _, job := range q.jobs {
		if job.ID == id {
			return job, nil
		}
	}
	return nil, errors.New("job not found")
}

func (q *fakeQueue) GetByRecipient(ctx context.Context, email string) ([]*entity.EmailJob, error) {
	matched := make([]*entity.EmailJob, 0)
	for _, job := range q.jobs {
		if job.RecipientEmail == email {
			matched = append(matched, job)
		}
	}
	return matched, nil
}

func (q *fakeQueue) DeleteOldSentJobs(ctx context.Context, olderThanDays int) (int64, error) {
	return 0, nil
}

var _ adapter.EmailQueueRepository = (*fakeQueue)(nil)

func newTestWorker(t *testing.T) (*Worker, *fakeQueue, *MockEmailSender) {
	t.Helper()

	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("failed to load templates: %v", err)
	}

	queue := &fakeQueue{}
	sender := NewMockEmailSender()
	worker := NewWorker(queue, sender, renderer, DefaultWorkerConfig())
	return worker, queue, sender
}

func contactJob() *entity.EmailJob {
	return entity.NewEmailJob(
		entity.TemplateContactNotification,
		"info@blessingpoultries.com",
		"Blessing Poultries",
		"New contact message from Adaeze Obi - Blessing Poultries",
		map[string]interface{}{
			"message_id":   "f3b7c1d0-0000-0000-0000-000000000001",
			"sender_name":  "Adaeze Obi",
			"sender_email": "adaeze@example.com",
			"subject":      "Bulk egg order",
			"body":         "Do you supply 200 crates weekly?",
		},
	)
}

func TestWorkerSendsContactNotification(t *testing.T) {
	worker, queue, sender := newTestWorker(t)
	ctx := context.Background()

	job := contactJob()
	if err := queue.Create(ctx, job); err != nil {
		t.Fatalf("failed to queue job: %v", err)
	}

	worker.ProcessNow(ctx)

	if job.Status != entity.EmailStatusSent {
		t.Fatalf("expected status %q, got %q (last error: %s)", entity.EmailStatusSent, job.Status, job.LastError)
	}
	if job.ResendID != "mock-1" {
		t.Errorf("expected resend ID mock-1, got %q", job.ResendID)
	}
	if job.ProcessedAt == nil {
		t.Error("expected ProcessedAt to be set")
	}

	if len(sender.SentEmails) != 1 {
		t.Fatalf("expected 1 sent email, got %d", len(sender.SentEmails))
	}
	sent := sender.SentEmails[0]
	if sent.To != "info@blessingpoultries.com" {
		t.Errorf("unexpected recipient %q", sent.To)
	}
	if !strings.Contains(sent.HTML, "Adaeze Obi") {
		t.Error("rendered HTML should contain the sender name")
	}
	if !strings.Contains(sent.HTML, "Do you supply 200 crates weekly?") {
		t.Error("rendered HTML should contain the message body")
	}
	if !strings.Contains(sent.Text, "adaeze@example.com") {
		t.Error("rendered text should contain the sender email")
	}
}

func TestWorkerPermanentFailure(t *testing.T) {
	worker, queue, sender := newTestWorker(t)
	ctx := context.Background()

	job := contactJob()
	if err := queue.Create(ctx, job); err != nil {
		t.Fatalf("failed to queue job: %v", err)
	}
	sender.SetFailure(errors.New("recipient rejected"), true)

	worker.ProcessNow(ctx)

	if job.Status != entity.EmailStatusFailed {
		t.Fatalf("expected status %q after permanent failure, got %q", entity.EmailStatusFailed, job.Status)
	}
	if job.Attempts != 1 {
		t.Errorf("expected 1 attempt, got %d", job.Attempts)
	}
	if job.LastError == "" {
		t.Error("expected LastError to be recorded")
	}
}

func TestWorkerTemporaryFailureSchedulesRetry(t *testing.T) {
	worker, queue, sender := newTestWorker(t)
	ctx := context.Background()

	job := contactJob()
	if err := queue.Create(ctx, job); err != nil {
		t.Fatalf("failed to queue job: %v", err)
	}
	sender.SetFailure(errors.New("provider timeout"), false)

	worker.ProcessNow(ctx)

	if job.Status != entity.EmailStatusPending {
		t.Fatalf("expected status %q awaiting retry, got %q", entity.EmailStatusPending, job.Status)
	}
	if job.Attempts != 1 {
		t.Errorf("expected 1 attempt, got %d", job.Attempts)
	}
	if !job.ScheduledAt.After(time.Now().UTC().Add(30 * time.Second)) {
		t.Errorf("expected retry to be scheduled in the future, got %v", job.ScheduledAt)
	}

	// The retried job should send once the failure clears and it is due again.
	sender.ClearFailure()
	job.ScheduledAt = time.Now().UTC().Add(-time.Second)
	worker.ProcessNow(ctx)

	if job.Status != entity.EmailStatusSent {
		t.Errorf("expected retried job to be sent, got %q", job.Status)
	}
}

func TestWorkerExhaustsRetries(t *testing.T) {
	worker, queue, sender := newTestWorker(t)
	ctx := context.Background()

	job := contactJob()
	if err := queue.Create(ctx, job); err != nil {
		t.Fatalf("failed to queue job: %v", err)
	}
	sender.SetFailure(errors.New("provider down"), false)

	for i := 0; i < job.MaxAttempts; i++ {
		job.ScheduledAt = time.Now().UTC().Add(-time.Second)
		worker.ProcessNow(ctx)
	}

	if job.Status != entity.EmailStatusFailed {
		t.Fatalf("expected status %q after exhausting retries, got %q", entity.EmailStatusFailed, job.Status)
	}
	if job.Attempts != job.MaxAttempts {
		t.Errorf("expected %d attempts, got %d", job.MaxAttempts, job.Attempts)
	}
}

func TestWorkerUnknownTemplateFailsPermanently(t *testing.T) {
	worker, queue, sender := newTestWorker(t)
	ctx := context.Background()

	job := entity.NewEmailJob(
		entity.EmailTemplateType("weekly_digest"),
		"info@blessingpoultries.com",
		"Blessing Poultries",
		"Weekly digest",
		map[string]interface{}{},
	)
	if err := queue.Create(ctx, job); err != nil {
		t.Fatalf("failed to queue job: %v", err)
	}

	worker.ProcessNow(ctx)

	if job.Status != entity.EmailStatusFailed {
		t.Fatalf("expected status %q for unknown template, got %q", entity.EmailStatusFailed, job.Status)
	}
	if len(sender.SentEmails) != 0 {
		t.Errorf("expected no send attempt, got %d", len(sender.SentEmails))
	}
	if !strings.Contains(job.LastError, "unknown template") {
		t.Errorf("expected template error in LastError, got %q", job.LastError)
	}
}

func TestServiceQueueContactNotification(t *testing.T) {
	queue := &fakeQueue{}
	service := NewService(queue, "info@blessingpoultries.com", "Blessing Poultries")

	input := adapter.QueueContactNotificationInput{
		MessageID:   "f3b7c1d0-0000-0000-0000-000000000002",
		SenderName:  "Chinedu Okafor",
		SenderEmail: "chinedu@example.com",
		Subject:     "Broiler availability",
		Body:        "Do you have 6-week-old broilers in stock?",
	}
	if err := service.QueueContactNotification(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(queue.jobs) != 1 {
		t.Fatalf("expected 1 queued job, got %d", len(queue.jobs))
	}
	job := queue.jobs[0]
	if job.TemplateType != entity.TemplateContactNotification {
		t.Errorf("unexpected template type %q", job.TemplateType)
	}
	if job.RecipientEmail != "info@blessingpoultries.com" {
		t.Errorf("unexpected recipient %q", job.RecipientEmail)
	}
	if job.Subject != "New contact message from Chinedu Okafor - Blessing Poultries" {
		t.Errorf("unexpected subject %q", job.Subject)
	}
	if job.Status != entity.EmailStatusPending {
		t.Errorf("expected pending status, got %q", job.Status)
	}
	if got := job.TemplateData["sender_email"]; got != "chinedu@example.com" {
		t.Errorf("unexpected sender_email %v", got)
	}
}

func TestServiceQueueFailureWrapsError(t *testing.T) {
	queue := &fakeQueue{createErr: errors.New("connection refused")}
	service := NewService(queue, "info@blessingpoultries.com", "Blessing Poultries")

	err := service.QueueContactNotification(context.Background(), adapter.QueueContactNotificationInput{
		MessageID:   "f3b7c1d0-0000-0000-0000-000000000003",
		SenderName:  "Ngozi Eze",
		SenderEmail: "ngozi@example.com",
		Subject:     "Feed supply",
		Body:        "Asking about feed prices.",
	})
	if err == nil {
		t.Fatal("expected an error")
	}

	var emailErr *domainerror.EmailError
	if !errors.As(err, &emailErr) {
		t.Fatalf("expected EmailError, got %T", err)
	}
	if emailErr.Code != domainerror.ErrCodeEmailQueueFailed {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeEmailQueueFailed, emailErr.Code)
	}
}
