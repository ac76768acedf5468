// Package discord posts generated rename reports to a Discord webhook as a
// file attachment.
package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"communityforge/report"
)

// ErrWebhookNotConfigured is returned when a notification is attempted but no
// webhook URL is available from the request or the configuration.
var ErrWebhookNotConfigured = errors.New("no discord webhook url configured")

// StatusError is returned when the webhook endpoint answers with a
// non-success status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("discord webhook returned status %d", e.Code)
	}
	return fmt.Sprintf("discord webhook returned status %d: %s", e.Code, e.Body)
}

// Client sends reports to Discord webhooks.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a new Discord webhook client.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Send uploads the report to the webhook as a plain text file attachment with
// a short caption. It issues a single POST, there is no retry.
func (c *Client) Send(ctx context.Context, webhookURL, reportText, label string) error {
	if webhookURL == "" {
		return ErrWebhookNotConfigured
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	payload, err := json.Marshal(map[string]string{
		"content": fmt.Sprintf("Community rename report for **%s**", label),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}
	if err := mw.WriteField("payload_json", string(payload)); err != nil {
		return fmt.Errorf("failed to write webhook payload: %w", err)
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="files[0]"; filename=%q`, report.FileName(label)))
	header.Set("Content-Type", "text/plain")
	part, err := mw.CreatePart(header)
	if err != nil {
		return fmt.Errorf("failed to create attachment part: %w", err)
	}
	if _, err := part.Write([]byte(reportText)); err != nil {
		return fmt.Errorf("failed to write attachment: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, &body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send webhook request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode >= 400 {
		var errorMsg strings.Builder
		if resp.Body != nil {
			buf := make([]byte, 256)
			if n, _ := resp.Body.Read(buf); n > 0 {
				errorMsg.Write(buf[:n])
			}
		}
		return &StatusError{Code: resp.StatusCode, Body: errorMsg.String()}
	}

	log.Debug("Sent discord webhook notification", "label", label, "status", resp.StatusCode)
	return nil
}

// webhook hosts accepted by ValidWebhookURL.
var webhookHosts = map[string]struct{}{
	"discord.com":        {},
	"discordapp.com":     {},
	"canary.discord.com": {},
	"ptb.discord.com":    {},
}

// ValidWebhookURL reports whether raw is a syntactically valid Discord
// webhook URL. It only inspects the URL, no network call is made.
func ValidWebhookURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	if _, ok := webhookHosts[strings.ToLower(u.Hostname())]; !ok {
		return false
	}
	return strings.Contains(u.Path, "/api/webhooks/")
}
