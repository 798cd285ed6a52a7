package branding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oneohq/notify/core/branding"
	"github.com/oneohq/notify/core/template"
)

func TestSettings_Context(t *testing.T) {
	t.Parallel()

	s := branding.Settings{
		CompanyName: "Northwind",
		LogoURL:     "https://cdn.oneo.app/w/northwind/logo.png",
		FooterText:  "Northwind Talent",
	}

	ctx := s.Context()
	assert.Equal(t, "Northwind", ctx["company_name"])
	assert.Equal(t, "https://cdn.oneo.app/w/northwind/logo.png", ctx["logo_url"])
	assert.Equal(t, "", ctx["twitter_url"])

	// Context keys line up with what the evaluator resolves after stripping
	// the branding. prefix.
	ev := template.New()
	out := ev.Render("{% if branding.logo_url %}<img src=\"{{ branding.logo_url }}\">{% endif %}", ctx)
	assert.Equal(t, `<img src="https://cdn.oneo.app/w/northwind/logo.png">`, out)
}

func TestSettings_Configured(t *testing.T) {
	t.Parallel()

	assert.False(t, branding.Settings{}.Configured())
	assert.True(t, branding.Settings{CompanyName: "x"}.Configured())
	assert.True(t, branding.Settings{LogoURL: "x"}.Configured())
}

func TestSampleContext(t *testing.T) {
	t.Parallel()

	ctx := branding.SampleContext()
	require.NotEmpty(t, ctx["company_name"])
	require.NotEmpty(t, ctx["logo_url"])

	// Sample keys cover everything a zero-value Settings exposes, so preview
	// templates never hit an unknown branding variable.
	for k := range (branding.Settings{}).Context() {
		assert.Contains(t, ctx, k)
	}
}

func TestMergeContext(t *testing.T) {
	t.Parallel()

	base := branding.SampleContext()
	overlay := map[string]any{
		"company_name": "Northwind",
		"logo_url":     "",
		"footer_text":  nil,
	}

	merged := branding.MergeContext(base, overlay)
	assert.Equal(t, "Northwind", merged["company_name"])
	assert.Equal(t, base["logo_url"], merged["logo_url"], "empty overlay value keeps sample")
	assert.Equal(t, base["footer_text"], merged["footer_text"], "nil overlay value keeps sample")
}
