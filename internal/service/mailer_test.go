package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ministry-portal-backend/internal/config"
	apperrors "ministry-portal-backend/internal/errors"
	"ministry-portal-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeptoMailer_Send(t *testing.T) {
	var received map[string]interface{}
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	mailer := service.NewZeptoMailer(&config.Config{
		ZeptoMailURL:   server.URL,
		ZeptoMailToken: "secret-token",
		ZeptoFromEmail: "noreply@example.com",
		ZeptoFromName:  "Ministerio",
	})

	err := mailer.Send(context.Background(), &service.MailMessage{
		ToAddress: "ana@example.com",
		ToName:    "Ana",
		Subject:   "Hola",
		HTMLBody:  "<p>Hola</p>",
	})

	require.NoError(t, err)
	assert.Equal(t, "Zoho-enczapikey secret-token", auth)
	assert.Equal(t, "Hola", received["subject"])
	assert.Equal(t, "<p>Hola</p>", received["htmlbody"])
	from := received["from"].(map[string]interface{})
	assert.Equal(t, "noreply@example.com", from["address"])
	to := received["to"].([]interface{})
	require.Len(t, to, 1)
	assert.Equal(t, "ana@example.com", to[0].(map[string]interface{})["email_address"].(map[string]interface{})["address"])
}

func TestZeptoMailer_Errors(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		mailer := service.NewZeptoMailer(&config.Config{ZeptoMailURL: "http://127.0.0.1:1"})

		err := mailer.Send(context.Background(), &service.MailMessage{ToAddress: "ana@example.com"})
		assert.ErrorIs(t, err, apperrors.ErrMailerNotConfigured)
	})

	t.Run("rejected by the API", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"invalid token"}`))
		}))
		defer server.Close()

		mailer := service.NewZeptoMailer(&config.Config{ZeptoMailURL: server.URL, ZeptoMailToken: "Zoho-enczapikey bad"})

		err := mailer.Send(context.Background(), &service.MailMessage{ToAddress: "ana@example.com"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status=401")
		assert.Contains(t, err.Error(), "invalid token")
	})
}
