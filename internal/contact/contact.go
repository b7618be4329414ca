// Package contact handles enquiries from the website contact form and
// forwards them to the office by e-mail.
package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"facility-services/internal/config"
	"facility-services/internal/costs"
	"facility-services/internal/i18n"
	"facility-services/internal/providers/resend"

	"github.com/google/uuid"
)

var (
	ErrUnknownCategory = errors.New("unknown service category")
	ErrInvalidQuote    = errors.New("invalid winter service quote")
	ErrMissingField    = errors.New("required field missing")
)

// Quote is the cost calculator input a visitor attaches to a winter service enquiry
type Quote struct {
	Area      float64 `json:"area" binding:"required" example:"2000"`
	SnowDepth string  `json:"snow_depth" binding:"required" example:"mittel"`
	Frequency int     `json:"frequency" binding:"required" example:"10"`
}

// Submission is a contact form entry
type Submission struct {
	Name     string `json:"name" binding:"required,max=200" example:"Erika Mustermann"`
	Email    string `json:"email" binding:"required,email" example:"erika@example.de"`
	Phone    string `json:"phone,omitempty" binding:"max=50" example:"+49 89 1234567"`
	Company  string `json:"company,omitempty" binding:"max=200" example:"Hausverwaltung Muster GmbH"`
	Category string `json:"category" binding:"required" example:"winter-service"`
	Message  string `json:"message" binding:"required,max=5000" example:"Wir benötigen ein Angebot für den Winterdienst."`
	Quote    *Quote `json:"quote,omitempty"`
}

// Receipt confirms a delivered enquiry
type Receipt struct {
	ID       uuid.UUID         `json:"id" swaggertype:"string" example:"3f2a8a9e-6d7e-4b9b-9c1f-0b6a3c2d1e4f"`
	SentAt   time.Time         `json:"sent_at"`
	Estimate *costs.Comparison `json:"estimate,omitempty"`
}

// Mailer delivers a rendered e-mail and returns the provider message id
type Mailer interface {
	Send(ctx context.Context, email resend.Email) (string, error)
}

type Service interface {
	Submit(ctx context.Context, sub Submission, tr *i18n.Translator) (*Receipt, error)
}

type contactService struct {
	mailer Mailer
	from   string
	to     string
	logger *slog.Logger
	now    func() time.Time
}

// NewContactService sends through Resend, or only logs when no API key is set
func NewContactService(cfg config.MailConfig, providers config.ProvidersConfig, logger *slog.Logger) Service {
	var mailer Mailer
	if cfg.APIKey == "" {
		logger.Warn("mail.apikey not set, contact form submissions will only be logged")
		mailer = resend.NewLogSender(logger)
	} else {
		mailer = resend.NewClient(cfg.BaseURL, cfg.APIKey, providers.Timeout, providers.BreakerTimeout, logger)
	}
	return NewContactServiceWithMailer(mailer, cfg, logger)
}

// NewContactServiceWithMailer is useful for testing with a mock mailer
func NewContactServiceWithMailer(mailer Mailer, cfg config.MailConfig, logger *slog.Logger) Service {
	return &contactService{
		mailer: mailer,
		from:   cfg.From,
		to:     cfg.To,
		logger: logger.With("component", "contact-service"),
		now:    time.Now,
	}
}

func (s *contactService) Submit(ctx context.Context, sub Submission, tr *i18n.Translator) (*Receipt, error) {
	sub = normalize(sub)
	if sub.Name == "" || sub.Email == "" || sub.Message == "" {
		return nil, ErrMissingField
	}
	if !KnownCategory(sub.Category) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, sub.Category)
	}

	var estimate *costs.Comparison
	if sub.Quote != nil {
		e, err := estimateQuote(*sub.Quote)
		if err != nil {
			return nil, err
		}
		estimate = e
	}

	id := uuid.New()
	subject := tr.Text("contact.subject", tr.Text("service."+sub.Category), sub.Name)

	text, html, err := render(tr, subject, sub, estimate)
	if err != nil {
		return nil, err
	}

	messageID, err := s.mailer.Send(ctx, resend.Email{
		From:    s.from,
		To:      []string{s.to},
		Subject: subject,
		Text:    text,
		HTML:    html,
		ReplyTo: []string{sub.Email},
	})
	if err != nil {
		s.logger.Error("failed to deliver enquiry", "id", id, "category", sub.Category, "error", err)
		return nil, fmt.Errorf("failed to deliver enquiry: %w", err)
	}

	s.logger.Info("enquiry delivered",
		"id", id,
		"category", sub.Category,
		"message_id", messageID,
		"with_quote", estimate != nil,
	)

	return &Receipt{
		ID:       id,
		SentAt:   s.now().UTC(),
		Estimate: estimate,
	}, nil
}

func estimateQuote(q Quote) (*costs.Comparison, error) {
	depth, ok := costs.ParseDepth(q.SnowDepth)
	if !ok {
		return nil, fmt.Errorf("%w: %w", ErrInvalidQuote, costs.ErrMissingDepth)
	}
	if err := costs.Validate(q.Area, depth, q.Frequency); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidQuote, err)
	}
	c := costs.Estimate(q.Area, depth, q.Frequency)
	return &c, nil
}

func normalize(sub Submission) Submission {
	sub.Name = strings.TrimSpace(sub.Name)
	sub.Email = strings.TrimSpace(sub.Email)
	sub.Phone = strings.TrimSpace(sub.Phone)
	sub.Company = strings.TrimSpace(sub.Company)
	sub.Category = strings.ToLower(strings.TrimSpace(sub.Category))
	sub.Message = strings.TrimSpace(sub.Message)
	return sub
}
