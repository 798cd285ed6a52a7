package preview

import "errors"

var (
	ErrInvalidConfig       = errors.New("invalid preview service configuration")
	ErrSenderNotConfigured = errors.New("email sender not configured")

	// ErrBrandingNotFound is returned by BrandingStore implementations when
	// a workspace has no branding record; the service falls back to the
	// sample context instead of failing the render.
	ErrBrandingNotFound = errors.New("branding settings not found")
)
