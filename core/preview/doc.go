// Package preview materializes notification email previews.
//
// A render loads the stored template and the workspace branding, layers
// sample values under the configured branding context, resolves the
// conditional tags, interpolates expression variables, and injects a
// booking-link QR code when the context carries a booking URL. The output
// feeds a sandboxed preview frame; it is display-only.
//
// Caching is best-effort: a cache failure is logged and the preview is
// recomputed. TestSend dispatches a rendered preview through the configured
// email sender so recruiters can check a template in a real inbox.
package preview
