package email

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/oneohq/notify/pkg/slug"
)

// DevSender implements Sender for local development. It writes each email
// as an HTML file plus a JSON metadata sidecar instead of dispatching it,
// so rendered previews can be opened in a browser.
type DevSender struct {
	dir string
}

// NewDevSender creates a development sender that saves emails under dir.
// The directory is created on first send.
func NewDevSender(dir string) *DevSender {
	return &DevSender{dir: dir}
}

type devMetadata struct {
	Timestamp string `json:"timestamp"`
	To        string `json:"to"`
	Subject   string `json:"subject"`
	Tag       string `json:"tag,omitempty"`
}

// Send writes the email to disk. Filenames are timestamp-prefixed for
// chronological ordering, with a slug of the tag (or subject) appended.
func (d *DevSender) Send(ctx context.Context, params SendParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("%w: create directory: %v", ErrFailedToSend, err)
	}

	identifier := params.Tag
	if identifier == "" {
		identifier = params.Subject
	}
	name := slug.Make(identifier, slug.WithSeparator("_"), slug.MaxLength(80))
	if name == "" {
		name = "email"
	}

	now := time.Now()
	base := filepath.Join(d.dir, now.Format("2006_01_02_150405")+"_"+name)

	if err := os.WriteFile(base+".html", []byte(params.HTML), 0o644); err != nil {
		return fmt.Errorf("%w: write html: %v", ErrFailedToSend, err)
	}

	meta, err := json.MarshalIndent(devMetadata{
		Timestamp: now.Format(time.RFC3339),
		To:        params.To,
		Subject:   params.Subject,
		Tag:       params.Tag,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal metadata: %v", ErrFailedToSend, err)
	}
	if err := os.WriteFile(base+".json", meta, 0o644); err != nil {
		return fmt.Errorf("%w: write metadata: %v", ErrFailedToSend, err)
	}

	return nil
}
