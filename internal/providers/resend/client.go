package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"facility-services/internal/providers/breaker"

	"github.com/sony/gobreaker"
)

// API Docs: https://resend.com/docs/api-reference/emails/send-email
const (
	baseURL = "https://api.resend.com"
)

// Email is the request body of POST /emails
type Email struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text,omitempty"`
	HTML    string   `json:"html,omitempty"`
	ReplyTo []string `json:"reply_to,omitempty"`
}

type sendResponse struct {
	ID string `json:"id"`
}

type errorResponse struct {
	StatusCode int    `json:"statusCode"`
	Name       string `json:"name"`
	Message    string `json:"message"`
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	breaker    *gobreaker.CircuitBreaker
	logger     *slog.Logger
}

func NewClient(base, apiKey string, timeout, breakerTimeout time.Duration, logger *slog.Logger) *Client {
	if base == "" {
		base = baseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    base,
		apiKey:     apiKey,
		breaker:    breaker.New("resend", breakerTimeout, logger),
		logger:     logger.With("component", "resend-client"),
	}
}

// Send delivers email and returns the provider's message id
func (c *Client) Send(ctx context.Context, email Email) (string, error) {
	payload, err := json.Marshal(email)
	if err != nil {
		return "", fmt.Errorf("failed to encode email: %w", err)
	}

	return breaker.Execute(c.breaker, func() (string, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(payload))
		if err != nil {
			return "", fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			c.logger.Error("failed to send email", "error", err)
			return "", fmt.Errorf("failed to send: %w", err)
		}
		defer func(Body io.ReadCloser) {
			_ = Body.Close()
		}(resp.Body)

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			var apiErr errorResponse
			if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
				c.logger.Error("Resend API returned error",
					"status_code", resp.StatusCode,
					"name", apiErr.Name,
					"message", apiErr.Message,
				)
				return "", fmt.Errorf("send returned status %d: %s: %s", resp.StatusCode, apiErr.Name, apiErr.Message)
			}
			return "", fmt.Errorf("send returned status %d: %s", resp.StatusCode, string(body))
		}

		var out sendResponse
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return "", fmt.Errorf("failed to decode response: %w", err)
		}

		c.logger.Info("email sent", "id", out.ID, "subject", email.Subject)
		return out.ID, nil
	})
}

// LogSender stands in for Client when no API key is configured. It logs the
// message instead of delivering it.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger.With("component", "log-mailer")}
}

func (s *LogSender) Send(_ context.Context, email Email) (string, error) {
	s.logger.Warn("mail delivery disabled, email not sent",
		"to", email.To,
		"reply_to", email.ReplyTo,
		"subject", email.Subject,
	)
	s.logger.Debug("email body", "text", email.Text)
	return "", nil
}
