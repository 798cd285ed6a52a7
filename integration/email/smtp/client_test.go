package smtp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oneohq/notify/core/email"
	"github.com/oneohq/notify/integration/email/smtp"
)

func validConfig() smtp.Config {
	return smtp.Config{
		Host:         "smtp.example.com",
		Port:         587,
		Username:     "user@example.com",
		Password:     "password",
		TLSMode:      "starttls",
		SenderEmail:  "noreply@oneo.app",
		SupportEmail: "support@oneo.app",
	}
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*smtp.Config)
		wantErr bool
		errMsg  string
	}{
		{name: "valid config", mutate: func(*smtp.Config) {}},
		{name: "tls mode", mutate: func(c *smtp.Config) { c.TLSMode = "tls" }},
		{name: "plain mode", mutate: func(c *smtp.Config) { c.TLSMode = "plain" }},
		{
			name:    "empty host",
			mutate:  func(c *smtp.Config) { c.Host = "" },
			wantErr: true,
			errMsg:  "Host is required",
		},
		{
			name:    "zero port",
			mutate:  func(c *smtp.Config) { c.Port = 0 },
			wantErr: true,
			errMsg:  "Port must be between 1 and 65535",
		},
		{
			name:    "port too high",
			mutate:  func(c *smtp.Config) { c.Port = 70000 },
			wantErr: true,
			errMsg:  "Port must be between 1 and 65535",
		},
		{
			name:    "empty username",
			mutate:  func(c *smtp.Config) { c.Username = "" },
			wantErr: true,
			errMsg:  "Username is required",
		},
		{
			name:    "empty password",
			mutate:  func(c *smtp.Config) { c.Password = "" },
			wantErr: true,
			errMsg:  "Password is required",
		},
		{
			name:    "invalid tls mode",
			mutate:  func(c *smtp.Config) { c.TLSMode = "ssl" },
			wantErr: true,
			errMsg:  "TLSMode must be starttls, tls, or plain",
		},
		{
			name:    "malformed sender email",
			mutate:  func(c *smtp.Config) { c.SenderEmail = "nope" },
			wantErr: true,
			errMsg:  "SenderEmail",
		},
		{
			name:    "malformed support email",
			mutate:  func(c *smtp.Config) { c.SupportEmail = "@example.com" },
			wantErr: true,
			errMsg:  "SupportEmail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.mutate(&cfg)
			client, err := smtp.New(cfg)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.NotNil(t, client)
				return
			}
			require.ErrorIs(t, err, email.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestSend_RejectsInvalidParams(t *testing.T) {
	t.Parallel()

	client, err := smtp.New(validConfig())
	require.NoError(t, err)

	err = client.Send(context.Background(), email.SendParams{To: "broken"})
	assert.ErrorIs(t, err, email.ErrInvalidParams)
}

func TestSend_CanceledContext(t *testing.T) {
	t.Parallel()

	client, err := smtp.New(validConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = client.Send(ctx, email.SendParams{
		To:      "candidate@example.com",
		Subject: "s",
		HTML:    "<p>b</p>",
	})
	assert.ErrorIs(t, err, email.ErrFailedToSend)
	assert.ErrorIs(t, err, context.Canceled)
}
