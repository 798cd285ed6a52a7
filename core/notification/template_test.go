package notification_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oneohq/notify/core/notification"
)

func TestNew(t *testing.T) {
	t.Parallel()

	ws := uuid.New()
	tmpl := notification.New(ws, notification.EventOfferSent, "Offer Sent — Standard", "Your offer from {{ branding.company_name }}", "<p>body</p>")

	assert.NotEqual(t, uuid.Nil, tmpl.ID)
	assert.Equal(t, ws, tmpl.WorkspaceID)
	assert.Equal(t, "offer-sent-standard", tmpl.Slug)
	assert.True(t, tmpl.Enabled)
	assert.NoError(t, tmpl.Validate())
}

func TestTemplate_Validate(t *testing.T) {
	t.Parallel()

	valid := notification.New(uuid.New(), notification.EventInterviewScheduled, "Interview", "subject", "<p>body</p>")

	tests := []struct {
		name   string
		mutate func(*notification.Template)
		errMsg string
	}{
		{
			name:   "missing workspace",
			mutate: func(tm *notification.Template) { tm.WorkspaceID = uuid.Nil },
			errMsg: "workspace id is required",
		},
		{
			name:   "unknown event key",
			mutate: func(tm *notification.Template) { tm.EventKey = "pipeline.exploded" },
			errMsg: "unknown event key",
		},
		{
			name:   "blank subject",
			mutate: func(tm *notification.Template) { tm.Subject = "  " },
			errMsg: "subject is required",
		},
		{
			name:   "blank body",
			mutate: func(tm *notification.Template) { tm.BodyHTML = "" },
			errMsg: "body is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tmpl := valid
			tt.mutate(&tmpl)
			err := tmpl.Validate()
			require.ErrorIs(t, err, notification.ErrInvalidTemplate)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestEventKeys(t *testing.T) {
	t.Parallel()

	keys := notification.EventKeys()
	require.NotEmpty(t, keys)
	for _, k := range keys {
		assert.True(t, notification.KnownEventKey(k))
	}
	assert.False(t, notification.KnownEventKey("nope"))
	assert.False(t, notification.KnownEventKey(""))
}
