// Package contact handles contact form submissions.
package contact

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/portfolio-site/pkg/db"
)

const DefaultDelay = time.Second

const SuccessMessage = "Message sent successfully! I'll get back to you soon."

var (
	ErrMissingField = errors.New("contact: name, email and message are required")
	ErrInvalidEmail = errors.New("contact: invalid email address")
)

// Status mirrors the form lifecycle: idle -> submitting -> success | error.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
)

// Begin moves the form into submitting. A form that is already submitting
// refuses a second submit.
func (s Status) Begin() (Status, bool) {
	if s == StatusSubmitting {
		return s, false
	}
	return StatusSubmitting, true
}

// Finish settles a submitting form from the Submit result. Other states are
// left as they are.
func (s Status) Finish(err error) Status {
	if s != StatusSubmitting {
		return s
	}
	return StatusFor(err)
}

type Submission struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Message  string `json:"message"`
	RemoteIP string `json:"-"`
}

// Normalize trims every field and checks that the submission can be stored.
func (s Submission) Normalize() (Submission, error) {
	s.Name = strings.TrimSpace(s.Name)
	s.Email = strings.TrimSpace(s.Email)
	s.Message = strings.TrimSpace(s.Message)
	if s.Name == "" || s.Email == "" || s.Message == "" {
		return s, ErrMissingField
	}
	addr, err := mail.ParseAddress(s.Email)
	if err != nil || addr.Address != s.Email {
		return s, ErrInvalidEmail
	}
	return s, nil
}

type Store interface {
	InsertContact(ctx context.Context, m db.ContactMessage) error
	GetRecentContacts(ctx context.Context, limit int) ([]db.ContactMessage, error)
}

type Service struct {
	store Store
	delay time.Duration
	now   func() time.Time
}

func NewService(store Store, delay time.Duration) *Service {
	if delay < 0 {
		delay = 0
	}
	return &Service{store: store, delay: delay, now: time.Now}
}

// Submit validates sub, waits out the submission delay and persists it.
func (s *Service) Submit(ctx context.Context, sub Submission) (db.ContactMessage, error) {
	sub, err := sub.Normalize()
	if err != nil {
		return db.ContactMessage{}, err
	}

	if s.delay > 0 {
		t := time.NewTimer(s.delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return db.ContactMessage{}, ctx.Err()
		case <-t.C:
		}
	}

	msg := db.ContactMessage{
		ID:        uuid.NewString(),
		Name:      sub.Name,
		Email:     sub.Email,
		Message:   sub.Message,
		RemoteIP:  sub.RemoteIP,
		CreatedAt: s.now().UTC(),
	}
	if err := s.store.InsertContact(ctx, msg); err != nil {
		return db.ContactMessage{}, fmt.Errorf("store contact: %w", err)
	}

	log.Info().Str("id", msg.ID).Str("email", msg.Email).Msg("✉️  Contact message received")
	return msg, nil
}

func (s *Service) Recent(ctx context.Context, limit int) ([]db.ContactMessage, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.store.GetRecentContacts(ctx, limit)
}

// StatusFor maps a Submit result onto the form status shown to the visitor.
func StatusFor(err error) Status {
	if err != nil {
		return StatusError
	}
	return StatusSuccess
}
