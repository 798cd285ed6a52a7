// Package s3 stores workspace branding assets on Amazon S3 or an
// S3-compatible service.
//
// Logos live under branding/{workspace_id}/logo{ext}; UploadLogo returns
// the public URL that feeds branding.Settings.LogoURL and, from there, the
// branding.logo_url template variable. AWS errors are classified into
// domain sentinels (ErrAssetNotFound, ErrAccessDenied, ErrOperationTimeout)
// so callers never inspect provider error codes.
package s3
