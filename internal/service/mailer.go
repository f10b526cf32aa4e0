package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"ministry-portal-backend/internal/config"
	apperrors "ministry-portal-backend/internal/errors"
	"ministry-portal-backend/internal/logger"
)

// MailMessage is a single HTML email
type MailMessage struct {
	ToAddress string
	ToName    string
	Subject   string
	HTMLBody  string
}

// ZeptoMailer sends email through the ZeptoMail HTTP API
type ZeptoMailer struct {
	url        string
	token      string
	fromEmail  string
	fromName   string
	httpClient *http.Client
}

// NewZeptoMailer creates a mailer from the application config
func NewZeptoMailer(cfg *config.Config) *ZeptoMailer {
	return &ZeptoMailer{
		url:        cfg.ZeptoMailURL,
		token:      cfg.ZeptoMailToken,
		fromEmail:  cfg.ZeptoFromEmail,
		fromName:   cfg.ZeptoFromName,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type zeptoAddress struct {
	Address string `json:"address"`
	Name    string `json:"name,omitempty"`
}

type zeptoRecipient struct {
	EmailAddress zeptoAddress `json:"email_address"`
}

type zeptoRequest struct {
	From     zeptoAddress     `json:"from"`
	To       []zeptoRecipient `json:"to"`
	Subject  string           `json:"subject"`
	HTMLBody string           `json:"htmlbody"`
}

// Send posts msg to ZeptoMail. A missing token is a configuration error.
func (m *ZeptoMailer) Send(ctx context.Context, msg *MailMessage) error {
	if m.token == "" {
		return apperrors.ErrMailerNotConfigured
	}

	payload, err := json.Marshal(zeptoRequest{
		From:     zeptoAddress{Address: m.fromEmail, Name: m.fromName},
		To:       []zeptoRecipient{{EmailAddress: zeptoAddress{Address: msg.ToAddress, Name: msg.ToName}}},
		Subject:  msg.Subject,
		HTMLBody: msg.HTMLBody,
	})
	if err != nil {
		return fmt.Errorf("failed to encode email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	token := m.token
	if !strings.HasPrefix(token, "Zoho-enczapikey") {
		token = "Zoho-enczapikey " + token
	}
	req.Header.Set("Authorization", token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	logger.WithContext(ctx).WithField("to", msg.ToAddress).Info("sending email via ZeptoMail")
	resp, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("zeptomail request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("zeptomail request failed: status=%d body=%s", resp.StatusCode, string(body))
	}
	return nil
}
