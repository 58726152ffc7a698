// Package contact validates contact-form drafts and hands them to the
// email relay.
package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/vistaarbengaluru/vistaar/internal/models"
	"github.com/vistaarbengaluru/vistaar/internal/relay"
)

var (
	ErrMissingFields = errors.New("contact: missing required fields")
	ErrDelivery      = errors.New("contact: message delivery failed")
)

var (
	MissingNotice = models.Notice{
		Title:       "Missing Information",
		Description: "Please fill in all fields before submitting.",
		Variant:     "destructive",
	}
	SentNotice = models.Notice{
		Title:       "Message Sent!",
		Description: "Thank you for your inquiry. We'll get back to you soon.",
		Variant:     "default",
	}
	FailedNotice = models.Notice{
		Title:       "Error",
		Description: "Failed to send message. Please try again or contact us directly.",
		Variant:     "destructive",
	}
)

// Sender delivers a message. *relay.Client implements it.
type Sender interface {
	Send(ctx context.Context, m relay.Message) error
}

// Recorder stores submission attempts. It is optional.
type Recorder interface {
	SaveInquiry(ctx context.Context, inq models.Inquiry) error
}

// Validate rejects a draft with an empty field. Whitespace counts as content.
func Validate(d models.Draft) error {
	if d.Name == "" || d.Email == "" || d.Message == "" {
		return ErrMissingFields
	}
	return nil
}

// NoticeFor maps a Submit result to the notice shown to the visitor.
func NoticeFor(err error) models.Notice {
	switch {
	case err == nil:
		return SentNotice
	case errors.Is(err, ErrMissingFields):
		return MissingNotice
	default:
		return FailedNotice
	}
}

type Service struct {
	sender    Sender
	recorder  Recorder
	recipient string
}

// NewService returns a Service. recorder may be nil.
func NewService(sender Sender, recorder Recorder, recipient string) *Service {
	return &Service{
		sender:    sender,
		recorder:  recorder,
		recipient: recipient,
	}
}

// Submit validates the draft and sends it once, fields unchanged. An
// incomplete draft never reaches the sender.
func (s *Service) Submit(ctx context.Context, d models.Draft) error {
	if err := Validate(d); err != nil {
		return err
	}

	sendErr := s.sender.Send(ctx, relay.Message{
		FromName:  d.Name,
		FromEmail: d.Email,
		Message:   d.Message,
		ToName:    s.recipient,
	})
	if sendErr != nil {
		slog.Error("Failed to send contact message", "error", sendErr, "from_email", d.Email)
	}

	s.record(ctx, d, sendErr)

	if sendErr != nil {
		return fmt.Errorf("%w: %w", ErrDelivery, sendErr)
	}
	return nil
}

func (s *Service) record(ctx context.Context, d models.Draft, sendErr error) {
	if s.recorder == nil {
		return
	}

	inq := models.Inquiry{
		ID:        uuid.NewString(),
		Name:      d.Name,
		Email:     d.Email,
		Message:   d.Message,
		Delivered: sendErr == nil,
		CreatedAt: time.Now().UTC(),
	}
	if sendErr != nil {
		inq.Error = sendErr.Error()
	}

	if err := s.recorder.SaveInquiry(context.WithoutCancel(ctx), inq); err != nil {
		slog.Error("Failed to record inquiry", "error", err)
	}
}
