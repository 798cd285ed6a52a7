package template_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oneohq/notify/core/template"
)

func TestInterpolate(t *testing.T) {
	t.Parallel()

	ev := template.New()

	tests := []struct {
		name string
		in   string
		vars map[string]any
		want string
	}{
		{
			name: "no expressions",
			in:   "<p>static</p>",
			vars: map[string]any{"x": "y"},
			want: "<p>static</p>",
		},
		{
			name: "single expression",
			in:   "Hello {{ branding.company_name }}!",
			vars: map[string]any{"company_name": "Oneo"},
			want: "Hello Oneo!",
		},
		{
			name: "multiple expressions",
			in:   `<img src="{{ branding.logo_url }}" alt="{{ branding.company_name }}">`,
			vars: map[string]any{"logo_url": "https://cdn.oneo.app/l.png", "company_name": "Oneo"},
			want: `<img src="https://cdn.oneo.app/l.png" alt="Oneo">`,
		},
		{
			name: "unknown variable left literal",
			in:   "<p>{{ branding.missing }}</p>",
			vars: map[string]any{},
			want: "<p>{{ branding.missing }}</p>",
		},
		{
			name: "nil value renders empty",
			in:   "a{{ branding.footer_text }}b",
			vars: map[string]any{"footer_text": nil},
			want: "ab",
		},
		{
			name: "numeric value stringified",
			in:   "expires in {{ branding.expiry_days }} days",
			vars: map[string]any{"expiry_days": 14},
			want: "expires in 14 days",
		},
		{
			name: "unterminated open marker is literal",
			in:   "text {{ branding.logo_url",
			vars: map[string]any{"logo_url": "x"},
			want: "text {{ branding.logo_url",
		},
		{
			name: "whitespace inside tag tolerated",
			in:   "{{branding.company_name}} and {{  branding.company_name  }}",
			vars: map[string]any{"company_name": "Oneo"},
			want: "Oneo and Oneo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ev.Interpolate(tt.in, tt.vars))
		})
	}
}

func TestRender_FullPipeline(t *testing.T) {
	t.Parallel()

	ev := template.New()
	in := `{% if branding.logo_url %}<img src="{{ branding.logo_url }}">{% else %}<h1>{{ branding.company_name }}</h1>{% endif %}`

	t.Run("winning branch interpolated", func(t *testing.T) {
		t.Parallel()
		got := ev.Render(in, map[string]any{"logo_url": "https://cdn.oneo.app/l.png", "company_name": "Oneo"})
		assert.Equal(t, `<img src="https://cdn.oneo.app/l.png">`, got)
	})

	t.Run("losing branch variables never rendered", func(t *testing.T) {
		t.Parallel()
		got := ev.Render(in, map[string]any{"company_name": "Oneo"})
		assert.Equal(t, "<h1>Oneo</h1>", got)
		assert.NotContains(t, got, "{{")
	})
}
