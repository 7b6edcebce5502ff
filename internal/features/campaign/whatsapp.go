package campaign

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"edu-crm/internal/config"
)

// WhatsAppSender posts messages to an external WhatsApp gateway.
type WhatsAppSender interface {
	Send(phone, message string) error
}

type whatsAppClient struct {
	apiURL string
	token  string
	client *http.Client
}

func NewWhatsAppSender(cfg *config.Config) WhatsAppSender {
	return &whatsAppClient{
		apiURL: cfg.WhatsAppAPIURL,
		token:  cfg.WhatsAppToken,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

type whatsAppPayload struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

func (w *whatsAppClient) Send(phone, message string) error {
	if w.apiURL == "" {
		return fmt.Errorf("whatsapp gateway is not configured")
	}

	body, err := json.Marshal(whatsAppPayload{To: phone, Message: message})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, w.apiURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+w.token)

	resp, err := w.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("whatsapp gateway returned status %d", resp.StatusCode)
	}
	return nil
}
