package branding

import (
	"time"

	"github.com/google/uuid"
)

// Settings is the per-workspace branding record that drives notification
// email appearance. Values flow into templates through Context; zero values
// make the corresponding {% if %} branches falsy so sections drop out of the
// rendered email.
type Settings struct {
	ID           uuid.UUID
	WorkspaceID  uuid.UUID
	CompanyName  string
	LogoURL      string
	PrimaryColor string
	WebsiteURL   string
	FacebookURL  string
	TwitterURL   string
	LinkedInURL  string
	InstagramURL string
	FooterText   string
	SupportEmail string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Context flattens the settings into the variable map the template evaluator
// consumes. Keys are the post-prefix names: templates reference
// branding.logo_url, the evaluator strips "branding." and looks up logo_url.
func (s Settings) Context() map[string]any {
	return map[string]any{
		"company_name":  s.CompanyName,
		"logo_url":      s.LogoURL,
		"primary_color": s.PrimaryColor,
		"website_url":   s.WebsiteURL,
		"facebook_url":  s.FacebookURL,
		"twitter_url":   s.TwitterURL,
		"linkedin_url":  s.LinkedInURL,
		"instagram_url": s.InstagramURL,
		"footer_text":   s.FooterText,
		"support_email": s.SupportEmail,
	}
}

// Configured reports whether the workspace has customized branding at all.
// Unconfigured workspaces render previews against SampleContext.
func (s Settings) Configured() bool {
	return s.CompanyName != "" || s.LogoURL != ""
}

// SampleContext returns the placeholder values used for previews when a
// workspace has not configured branding yet. It mirrors the sample data the
// template editor displays.
func SampleContext() map[string]any {
	return map[string]any{
		"company_name":  "Acme Recruiting",
		"logo_url":      "https://cdn.oneo.app/assets/sample-logo.png",
		"primary_color": "#4f46e5",
		"website_url":   "https://acme.example.com",
		"facebook_url":  "",
		"twitter_url":   "",
		"linkedin_url":  "https://linkedin.com/company/acme",
		"instagram_url": "",
		"footer_text":   "Acme Recruiting · 1 Market St · San Francisco, CA",
		"support_email": "talent@acme.example.com",
	}
}

// MergeContext overlays the workspace context on top of base. Base supplies
// sample values for keys the workspace leaves empty, so previews always have
// something to show.
func MergeContext(base, overlay map[string]any) map[string]any {
	merged := make(map[string]any, len(base)+len(overlay))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range overlay {
		if s, ok := v.(string); ok && s == "" {
			continue
		}
		if v == nil {
			continue
		}
		merged[k] = v
	}
	return merged
}
