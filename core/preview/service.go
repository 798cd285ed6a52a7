package preview

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/oneohq/notify/core/branding"
	"github.com/oneohq/notify/core/email"
	"github.com/oneohq/notify/core/notification"
	"github.com/oneohq/notify/core/template"
	"github.com/oneohq/notify/pkg/logger"
	"github.com/oneohq/notify/pkg/qrcode"
)

// TemplateStore loads notification templates.
type TemplateStore interface {
	TemplateByID(ctx context.Context, id uuid.UUID) (notification.Template, error)
}

// BrandingStore loads workspace branding settings.
type BrandingStore interface {
	BrandingByWorkspace(ctx context.Context, workspaceID uuid.UUID) (branding.Settings, error)
}

// Cache stores rendered previews. Implementations are best-effort: the
// service logs cache failures and recomputes, it never fails a render over
// them.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// Preview is a materialized notification preview. HTML is meant for a
// sandboxed preview surface (an isolated frame), never for script execution.
type Preview struct {
	TemplateID uuid.UUID
	EventKey   string
	Subject    string
	HTML       string
	Cached     bool
}

// Service renders notification previews: template + branding context →
// conditionals → interpolation → booking QR injection.
type Service struct {
	templates TemplateStore
	brandings BrandingStore
	cache     Cache
	sender    email.Sender
	evaluator *template.Evaluator
	log       *slog.Logger
	cacheTTL  time.Duration
	qrSize    int
}

// Option configures a Service.
type Option func(*Service)

// WithCache enables best-effort preview caching.
func WithCache(c Cache, ttl time.Duration) Option {
	return func(s *Service) {
		s.cache = c
		if ttl > 0 {
			s.cacheTTL = ttl
		}
	}
}

// WithSender enables TestSend.
func WithSender(sender email.Sender) Option {
	return func(s *Service) {
		s.sender = sender
	}
}

// WithEvaluator overrides the template evaluator, e.g. to change the
// variable prefix or pass cap.
func WithEvaluator(ev *template.Evaluator) Option {
	return func(s *Service) {
		if ev != nil {
			s.evaluator = ev
		}
	}
}

// WithLogger sets the logger. Defaults to slog.Default.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithQRSize overrides the booking QR pixel size.
func WithQRSize(px int) Option {
	return func(s *Service) {
		if px > 0 {
			s.qrSize = px
		}
	}
}

const defaultCacheTTL = 15 * time.Minute

// New creates a preview service. Both stores are required.
func New(templates TemplateStore, brandings BrandingStore, opts ...Option) (*Service, error) {
	if templates == nil {
		return nil, fmt.Errorf("%w: template store is required", ErrInvalidConfig)
	}
	if brandings == nil {
		return nil, fmt.Errorf("%w: branding store is required", ErrInvalidConfig)
	}

	s := &Service{
		templates: templates,
		brandings: brandings,
		evaluator: template.New(),
		log:       slog.Default(),
		cacheTTL:  defaultCacheTTL,
		qrSize:    qrcode.DefaultSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Render materializes the preview for a template. Extra variables (sample
// candidate or job values) overlay the branding context. When the context
// carries a non-empty booking_url, a booking_qr data URI is injected so
// templates can embed a scannable booking link.
func (s *Service) Render(ctx context.Context, templateID uuid.UUID, extra map[string]any) (Preview, error) {
	start := time.Now()

	tmpl, err := s.templates.TemplateByID(ctx, templateID)
	if err != nil {
		return Preview{}, fmt.Errorf("load template %s: %w", templateID, err)
	}

	vars := s.buildContext(ctx, tmpl.WorkspaceID, extra)

	key := s.cacheKey(tmpl, vars)
	if s.cache != nil {
		if html, ok, cacheErr := s.cache.Get(ctx, key); cacheErr != nil {
			s.log.WarnContext(ctx, "preview cache get failed", logger.Component("preview"), logger.Error(cacheErr))
		} else if ok {
			return Preview{
				TemplateID: tmpl.ID,
				EventKey:   tmpl.EventKey,
				Subject:    s.evaluator.Render(tmpl.Subject, vars),
				HTML:       html,
				Cached:     true,
			}, nil
		}
	}

	html := s.evaluator.Render(tmpl.BodyHTML, vars)
	subject := s.evaluator.Render(tmpl.Subject, vars)

	if s.cache != nil {
		if cacheErr := s.cache.Set(ctx, key, html, s.cacheTTL); cacheErr != nil {
			s.log.WarnContext(ctx, "preview cache set failed", logger.Component("preview"), logger.Error(cacheErr))
		}
	}

	s.log.DebugContext(ctx, "preview rendered",
		logger.Component("preview"),
		slog.String("template_id", tmpl.ID.String()),
		slog.String("event_key", tmpl.EventKey),
		logger.Duration(time.Since(start)),
	)

	return Preview{
		TemplateID: tmpl.ID,
		EventKey:   tmpl.EventKey,
		Subject:    subject,
		HTML:       html,
	}, nil
}

// TestSend renders the template and dispatches it to recipient through the
// configured sender, tagged with the template's event key.
func (s *Service) TestSend(ctx context.Context, templateID uuid.UUID, recipient string, extra map[string]any) error {
	if s.sender == nil {
		return ErrSenderNotConfigured
	}

	p, err := s.Render(ctx, templateID, extra)
	if err != nil {
		return err
	}

	return s.sender.Send(ctx, email.SendParams{
		To:      recipient,
		Subject: p.Subject,
		HTML:    p.HTML,
		Tag:     p.EventKey,
	})
}

// buildContext layers sample values, workspace branding, and call-site
// extras, then injects the booking QR when a booking URL is present.
func (s *Service) buildContext(ctx context.Context, workspaceID uuid.UUID, extra map[string]any) map[string]any {
	vars := branding.SampleContext()

	settings, err := s.brandings.BrandingByWorkspace(ctx, workspaceID)
	switch {
	case err == nil:
		vars = branding.MergeContext(vars, settings.Context())
	case errors.Is(err, ErrBrandingNotFound):
		// Unconfigured workspace previews against sample branding.
	default:
		s.log.WarnContext(ctx, "branding lookup failed, using sample context",
			logger.Component("preview"),
			slog.String("workspace_id", workspaceID.String()),
			logger.Error(err),
		)
	}

	vars = branding.MergeContext(vars, extra)

	if url, ok := vars["booking_url"].(string); ok && url != "" {
		if uri, qrErr := qrcode.GenerateDataURI(url, s.qrSize); qrErr == nil {
			vars["booking_qr"] = uri
		} else {
			s.log.WarnContext(ctx, "booking qr generation failed", logger.Component("preview"), logger.Error(qrErr))
		}
	}

	return vars
}

// cacheKey fingerprints the template revision and the full variable context
// so any change to either produces a fresh render.
func (s *Service) cacheKey(tmpl notification.Template, vars map[string]any) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s\n%s\n%s\n", tmpl.UpdatedAt.UTC().Format(time.RFC3339Nano), tmpl.Subject, tmpl.BodyHTML)

	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(h, "%s=%v\n", k, vars[k])
	}

	var sb strings.Builder
	sb.WriteString("preview:")
	sb.WriteString(tmpl.ID.String())
	sb.WriteString(":")
	sb.WriteString(hex.EncodeToString(h.Sum(nil))[:16])
	return sb.String()
}
