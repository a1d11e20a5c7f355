package whatsapp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsConfigured(t *testing.T) {
	assert.False(t, NewService("", "").IsConfigured())
	assert.False(t, NewService("token", "").IsConfigured())
	assert.True(t, NewService("token", "12345").IsConfigured())
}

func TestSendMessage(t *testing.T) {
	var received sendMessageRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/12345/messages", r.URL.Path)
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc := &Service{
		accessToken:   "token",
		phoneNumberID: "12345",
		httpClient:    server.Client(),
		apiBase:       server.URL,
	}

	err := svc.SendMessage(context.Background(), "+919840012345", "Your car is ready")
	require.NoError(t, err)
	assert.Equal(t, "whatsapp", received.MessagingProduct)
	assert.Equal(t, "+919840012345", received.To)
	assert.Equal(t, "Your car is ready", received.Text.Body)
}

func TestSendMessage_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": {"message": "Invalid OAuth access token", "code": 190}}`))
	}))
	defer server.Close()

	svc := &Service{
		accessToken:   "bad-token",
		phoneNumberID: "12345",
		httpClient:    server.Client(),
		apiBase:       server.URL,
	}

	err := svc.SendMessage(context.Background(), "+919840012345", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid OAuth access token")
}

func TestSendMessage_NotConfigured(t *testing.T) {
	err := NewService("", "").SendMessage(context.Background(), "+919840012345", "hello")
	assert.Error(t, err)
}
