package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// reportTitle is the fixed title of every pushed report.
const reportTitle = "EC2流量日报"

var httpClient = &http.Client{Timeout: 10 * time.Second}

// GotifySender pushes the plain-text report to a Gotify server.
type GotifySender struct {
	BaseURL string
	Token   string
}

func NewGotifySender(baseURL, token string) *GotifySender {
	return &GotifySender{BaseURL: baseURL, Token: token}
}

func (s *GotifySender) Name() string { return "gotify" }

type gotifyMessage struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	Priority int    `json:"priority"`
}

// Send posts the message to {base_url}?token={token}.
func (s *GotifySender) Send(ctx context.Context, message string) error {
	body, err := json.Marshal(gotifyMessage{
		Title:    reportTitle,
		Message:  message,
		Priority: 5,
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s?token=%s", s.BaseURL, s.Token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("gotify push failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("gotify push returned %d: %s", resp.StatusCode, respBody)
	}
	return nil
}
