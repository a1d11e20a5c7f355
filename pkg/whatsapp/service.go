package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ServiceInterface is the WhatsApp Business Cloud API client used for
// customer notifications. When no access token is configured the service
// runs in mock mode: sends are logged by the caller and reported as queued.
type ServiceInterface interface {
	SendMessage(ctx context.Context, toNumber string, text string) error
	IsConfigured() bool
}

type Service struct {
	accessToken   string
	phoneNumberID string
	httpClient    *http.Client
	apiBase       string
}

func NewService(accessToken, phoneNumberID string) ServiceInterface {
	return &Service{
		accessToken:   accessToken,
		phoneNumberID: phoneNumberID,
		httpClient:    &http.Client{Timeout: 15 * time.Second},
		apiBase:       "https://graph.facebook.com/v19.0",
	}
}

func (s *Service) IsConfigured() bool {
	return s.accessToken != "" && s.phoneNumberID != ""
}

type sendMessageRequest struct {
	MessagingProduct string      `json:"messaging_product"`
	To               string      `json:"to"`
	Type             string      `json:"type"`
	Text             textPayload `json:"text"`
}

type textPayload struct {
	Body string `json:"body"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

func (s *Service) SendMessage(ctx context.Context, toNumber string, text string) error {
	if !s.IsConfigured() {
		return fmt.Errorf("whatsapp integration is not configured")
	}

	payload := sendMessageRequest{
		MessagingProduct: "whatsapp",
		To:               toNumber,
		Type:             "text",
		Text:             textPayload{Body: text},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/%s/messages", s.apiBase, s.phoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.accessToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var apiErr apiError
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Message != "" {
			return fmt.Errorf("whatsapp api: %s (code %d)", apiErr.Error.Message, apiErr.Error.Code)
		}
		return fmt.Errorf("whatsapp api: unexpected status %d", resp.StatusCode)
	}

	return nil
}
