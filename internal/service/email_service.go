package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"time"
)

const resendAPIURL = "https://api.resend.com/emails"

type EmailService struct {
	apiKey     string
	from       string
	apiURL     string
	httpClient *http.Client
}

func NewEmailService(apiKey, from string) *EmailService {
	return &EmailService{
		apiKey:     apiKey,
		from:       from,
		apiURL:     resendAPIURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// WithEndpoint points the service at another Resend-compatible endpoint.
func (s *EmailService) WithEndpoint(apiURL string, httpClient *http.Client) *EmailService {
	s.apiURL = apiURL
	if httpClient != nil {
		s.httpClient = httpClient
	}
	return s
}

func (s *EmailService) SendPasswordReset(ctx context.Context, to, token string) error {
	payload := map[string]any{
		"from":    s.from,
		"to":      []string{to},
		"subject": "Fitness CRM - password reset code",
		"html":    buildResetEmail(token),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("resend http error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("resend api error %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}

func buildResetEmail(token string) string {
	return `<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family:Arial,sans-serif;background:#f4f4f4;padding:20px;">
  <div style="max-width:480px;margin:0 auto;background:#fff;border-radius:8px;padding:32px;">
    <h2 style="color:#333;">Fitness CRM password reset</h2>
    <p>Hello,</p>
    <p>Use the 6-digit code below to reset your password:</p>
    <div style="text-align:center;margin:24px 0;">
      <span style="font-size:36px;font-weight:bold;letter-spacing:8px;color:#2E7D32;">` + html.EscapeString(token) + `</span>
    </div>
    <p>The code is valid for <strong>15 minutes</strong>.</p>
    <p>If you did not request a reset, you can ignore this e-mail.</p>
    <hr style="border:none;border-top:1px solid #eee;margin:24px 0;">
    <p style="color:#999;font-size:12px;">Fitness CRM</p>
  </div>
</body>
</html>`
}
