package pg

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oneohq/notify/core/branding"
	"github.com/oneohq/notify/core/notification"
	"github.com/oneohq/notify/core/preview"
)

// Compile-time checks that Repository satisfies the preview service stores.
var (
	_ preview.TemplateStore = (*Repository)(nil)
	_ preview.BrandingStore = (*Repository)(nil)
)

// querier is the subset of pgx operations the repository needs; both
// *pgxpool.Pool and pgx.Tx satisfy it.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository persists notification templates and branding settings.
// Operations run on the pool, or on a transaction carried in the context
// via WithTx.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a Repository over an established pool.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) db(ctx context.Context) querier {
	if tx, ok := TxFromContext(ctx); ok {
		return tx
	}
	return r.pool
}

const templateColumns = "id, workspace_id, event_key, name, slug, subject, body_html, enabled, created_at, updated_at"

// CreateTemplate inserts a validated template. A second template for the
// same (workspace, event) pair fails with ErrDuplicate.
func (r *Repository) CreateTemplate(ctx context.Context, tmpl notification.Template) error {
	if err := tmpl.Validate(); err != nil {
		return err
	}

	_, err := r.db(ctx).Exec(ctx, `
		INSERT INTO notification_templates (`+templateColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		tmpl.ID, tmpl.WorkspaceID, tmpl.EventKey, tmpl.Name, tmpl.Slug,
		tmpl.Subject, tmpl.BodyHTML, tmpl.Enabled, tmpl.CreatedAt, tmpl.UpdatedAt,
	)
	if IsUniqueViolation(err) {
		return fmt.Errorf("%w: template for event %q in workspace %s", ErrDuplicate, tmpl.EventKey, tmpl.WorkspaceID)
	}
	if err != nil {
		return fmt.Errorf("insert template: %w", err)
	}
	return nil
}

// UpdateTemplate updates the editable fields of a template.
func (r *Repository) UpdateTemplate(ctx context.Context, tmpl notification.Template) error {
	if err := tmpl.Validate(); err != nil {
		return err
	}

	tag, err := r.db(ctx).Exec(ctx, `
		UPDATE notification_templates
		SET name = $2, slug = $3, subject = $4, body_html = $5, enabled = $6, updated_at = $7
		WHERE id = $1`,
		tmpl.ID, tmpl.Name, tmpl.Slug, tmpl.Subject, tmpl.BodyHTML, tmpl.Enabled, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("update template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notification.ErrNotFound
	}
	return nil
}

// DeleteTemplate removes a template.
func (r *Repository) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db(ctx).Exec(ctx, `DELETE FROM notification_templates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notification.ErrNotFound
	}
	return nil
}

// TemplateByID loads one template.
func (r *Repository) TemplateByID(ctx context.Context, id uuid.UUID) (notification.Template, error) {
	row := r.db(ctx).QueryRow(ctx, `
		SELECT `+templateColumns+` FROM notification_templates WHERE id = $1`, id)
	return scanTemplate(row)
}

// TemplateByEvent loads the workspace's template for a pipeline event.
func (r *Repository) TemplateByEvent(ctx context.Context, workspaceID uuid.UUID, eventKey string) (notification.Template, error) {
	row := r.db(ctx).QueryRow(ctx, `
		SELECT `+templateColumns+` FROM notification_templates
		WHERE workspace_id = $1 AND event_key = $2`, workspaceID, eventKey)
	return scanTemplate(row)
}

// TemplatesByWorkspace lists a workspace's templates ordered by name.
func (r *Repository) TemplatesByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]notification.Template, error) {
	rows, err := r.db(ctx).Query(ctx, `
		SELECT `+templateColumns+` FROM notification_templates
		WHERE workspace_id = $1 ORDER BY name`, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	var out []notification.Template
	for rows.Next() {
		tmpl, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, tmpl)
	}
	return out, rows.Err()
}

func scanTemplate(row pgx.Row) (notification.Template, error) {
	var t notification.Template
	err := row.Scan(&t.ID, &t.WorkspaceID, &t.EventKey, &t.Name, &t.Slug,
		&t.Subject, &t.BodyHTML, &t.Enabled, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return notification.Template{}, notification.ErrNotFound
	}
	if err != nil {
		return notification.Template{}, fmt.Errorf("scan template: %w", err)
	}
	return t, nil
}

const brandingColumns = "id, workspace_id, company_name, logo_url, primary_color, website_url, facebook_url, twitter_url, linkedin_url, instagram_url, footer_text, support_email, created_at, updated_at"

// UpsertBranding creates or replaces a workspace's branding settings.
func (r *Repository) UpsertBranding(ctx context.Context, s branding.Settings) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	_, err := r.db(ctx).Exec(ctx, `
		INSERT INTO branding_settings (`+brandingColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, now(), now())
		ON CONFLICT (workspace_id) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			logo_url = EXCLUDED.logo_url,
			primary_color = EXCLUDED.primary_color,
			website_url = EXCLUDED.website_url,
			facebook_url = EXCLUDED.facebook_url,
			twitter_url = EXCLUDED.twitter_url,
			linkedin_url = EXCLUDED.linkedin_url,
			instagram_url = EXCLUDED.instagram_url,
			footer_text = EXCLUDED.footer_text,
			support_email = EXCLUDED.support_email,
			updated_at = now()`,
		s.ID, s.WorkspaceID, s.CompanyName, s.LogoURL, s.PrimaryColor, s.WebsiteURL,
		s.FacebookURL, s.TwitterURL, s.LinkedInURL, s.InstagramURL, s.FooterText, s.SupportEmail,
	)
	if err != nil {
		return fmt.Errorf("upsert branding: %w", err)
	}
	return nil
}

// BrandingByWorkspace loads a workspace's branding settings. Missing
// settings map to preview.ErrBrandingNotFound so the preview service can
// fall back to the sample context.
func (r *Repository) BrandingByWorkspace(ctx context.Context, workspaceID uuid.UUID) (branding.Settings, error) {
	var s branding.Settings
	err := r.db(ctx).QueryRow(ctx, `
		SELECT `+brandingColumns+` FROM branding_settings WHERE workspace_id = $1`, workspaceID).
		Scan(&s.ID, &s.WorkspaceID, &s.CompanyName, &s.LogoURL, &s.PrimaryColor, &s.WebsiteURL,
			&s.FacebookURL, &s.TwitterURL, &s.LinkedInURL, &s.InstagramURL, &s.FooterText, &s.SupportEmail,
			&s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return branding.Settings{}, preview.ErrBrandingNotFound
	}
	if err != nil {
		return branding.Settings{}, fmt.Errorf("scan branding: %w", err)
	}
	return s, nil
}
