package notification

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"orderfellow/internal/config"
)

type Email struct {
	To      string `json:"to"`
	From    string `json:"from"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

type Sender interface {
	Send(ctx context.Context, email Email) error
}

// MailAPISender delivers transactional mail through an HTTP mail
// provider API.
type MailAPISender struct {
	client *resty.Client
	from   string
}

func NewMailAPISender(cfg config.MailConfig) *MailAPISender {
	client := resty.New().
		SetBaseURL(cfg.APIURL).
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.APIKey)

	return &MailAPISender{
		client: client,
		from:   cfg.From,
	}
}

func (s *MailAPISender) Send(ctx context.Context, email Email) error {
	email.From = s.from

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(email).
		Post("/messages")
	if err != nil {
		return fmt.Errorf("sending mail: %w", err)
	}

	if resp.StatusCode() != http.StatusOK && resp.StatusCode() != http.StatusAccepted {
		return fmt.Errorf("mail provider status: %d", resp.StatusCode())
	}

	return nil
}
