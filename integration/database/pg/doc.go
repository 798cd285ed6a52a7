// Package pg provides PostgreSQL persistence for notification templates and
// branding settings.
//
// Connect builds a pgx connection pool with bounded retry and a ping check;
// Migrate applies the embedded goose migrations on startup; Repository
// implements the preview service's TemplateStore and BrandingStore plus the
// CRUD operations the template editor needs. Transactions propagate through
// the context via WithTx, so multi-record changes commit atomically without
// threading a Tx through every call signature.
//
// Error mapping: pgx.ErrNoRows becomes notification.ErrNotFound or
// preview.ErrBrandingNotFound; unique violations become ErrDuplicate.
package pg
