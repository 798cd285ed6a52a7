package notification

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/oneohq/notify/pkg/slug"
)

// Template is a stored notification template. The Subject and BodyHTML
// fields hold raw template text with {% if %} conditionals and {{ }}
// expression tags; they stay unresolved until preview or dispatch.
type Template struct {
	ID          uuid.UUID
	WorkspaceID uuid.UUID
	EventKey    string
	Name        string
	Slug        string
	Subject     string
	BodyHTML    string
	Enabled     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// New creates an enabled template with a generated ID and a slug derived
// from the name.
func New(workspaceID uuid.UUID, eventKey, name, subject, bodyHTML string) Template {
	now := time.Now()
	return Template{
		ID:          uuid.New(),
		WorkspaceID: workspaceID,
		EventKey:    eventKey,
		Name:        name,
		Slug:        slug.Make(name, slug.MaxLength(64)),
		Subject:     subject,
		BodyHTML:    bodyHTML,
		Enabled:     true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Validate checks the template is dispatchable: known event key, non-blank
// subject and body, and a workspace to scope it to.
func (t Template) Validate() error {
	if t.WorkspaceID == uuid.Nil {
		return fmt.Errorf("%w: workspace id is required", ErrInvalidTemplate)
	}
	if !KnownEventKey(t.EventKey) {
		return fmt.Errorf("%w: unknown event key %q", ErrInvalidTemplate, t.EventKey)
	}
	if strings.TrimSpace(t.Subject) == "" {
		return fmt.Errorf("%w: subject is required", ErrInvalidTemplate)
	}
	if strings.TrimSpace(t.BodyHTML) == "" {
		return fmt.Errorf("%w: body is required", ErrInvalidTemplate)
	}
	return nil
}
