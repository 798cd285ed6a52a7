package email_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oneohq/notify/core/email"
)

func TestSendParams_Validate(t *testing.T) {
	t.Parallel()

	valid := email.SendParams{
		To:      "candidate@example.com",
		Subject: "Interview scheduled",
		HTML:    "<p>See you soon</p>",
		Tag:     "interview.scheduled",
	}

	tests := []struct {
		name   string
		mutate func(*email.SendParams)
		errMsg string
	}{
		{name: "valid", mutate: func(*email.SendParams) {}},
		{
			name:   "missing recipient",
			mutate: func(p *email.SendParams) { p.To = "" },
			errMsg: "To is required",
		},
		{
			name:   "malformed recipient",
			mutate: func(p *email.SendParams) { p.To = "not-an-email" },
			errMsg: "valid email address",
		},
		{
			name:   "blank subject",
			mutate: func(p *email.SendParams) { p.Subject = "   " },
			errMsg: "Subject is required",
		},
		{
			name:   "blank body",
			mutate: func(p *email.SendParams) { p.HTML = "" },
			errMsg: "HTML body is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := valid
			tt.mutate(&p)
			err := p.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, email.ErrInvalidParams)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestDevSender_Send(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sender := email.NewDevSender(filepath.Join(dir, "out"))

	params := email.SendParams{
		To:      "candidate@example.com",
		Subject: "Offer from Acme",
		HTML:    "<h1>Congratulations!</h1>",
		Tag:     "offer.sent",
	}
	require.NoError(t, sender.Send(context.Background(), params))

	entries, err := os.ReadDir(filepath.Join(dir, "out"))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	var htmlFile, jsonFile string
	for _, e := range entries {
		switch filepath.Ext(e.Name()) {
		case ".html":
			htmlFile = e.Name()
		case ".json":
			jsonFile = e.Name()
		}
	}
	require.NotEmpty(t, htmlFile)
	require.NotEmpty(t, jsonFile)
	assert.True(t, strings.Contains(htmlFile, "offer_sent"), "filename carries slugged tag: %s", htmlFile)

	body, err := os.ReadFile(filepath.Join(dir, "out", htmlFile))
	require.NoError(t, err)
	assert.Equal(t, params.HTML, string(body))

	metaRaw, err := os.ReadFile(filepath.Join(dir, "out", jsonFile))
	require.NoError(t, err)
	var meta map[string]string
	require.NoError(t, json.Unmarshal(metaRaw, &meta))
	assert.Equal(t, "candidate@example.com", meta["to"])
	assert.Equal(t, "Offer from Acme", meta["subject"])
	assert.Equal(t, "offer.sent", meta["tag"])
}

func TestDevSender_RejectsInvalidParams(t *testing.T) {
	t.Parallel()

	sender := email.NewDevSender(t.TempDir())
	err := sender.Send(context.Background(), email.SendParams{To: "x"})
	assert.ErrorIs(t, err, email.ErrInvalidParams)
}
