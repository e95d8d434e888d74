package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// telegramAPIBase is overridable so tests can point the sender at a local
// httptest server.
var telegramAPIBase = "https://api.telegram.org"

// TelegramSender pushes the plain-text report through the Telegram Bot API.
type TelegramSender struct {
	BotToken string
	ChatID   string
}

func NewTelegramSender(botToken, chatID string) *TelegramSender {
	return &TelegramSender{BotToken: botToken, ChatID: chatID}
}

func (s *TelegramSender) Name() string { return "telegram" }

type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// Send posts the message via sendMessage, wrapped in a Markdown code fence
// so the fixed-width table keeps its alignment in the Telegram client.
func (s *TelegramSender) Send(ctx context.Context, message string) error {
	body, err := json.Marshal(telegramMessage{
		ChatID:    s.ChatID,
		Text:      "```\n" + message + "\n```",
		ParseMode: "Markdown",
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", telegramAPIBase, s.BotToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("telegram push failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("telegram push returned %d: %s", resp.StatusCode, respBody)
	}
	return nil
}
