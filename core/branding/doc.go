// Package branding holds the per-workspace branding settings record and the
// context-building helpers that feed the notification template evaluator.
//
// Settings map one-to-one onto the branding screen in the workspace
// settings: logo, company name, colors, social links, and footer text.
// Context flattens a record into the variable map templates reference with
// the "branding." prefix, and SampleContext supplies placeholder values for
// workspaces that have not configured branding yet.
package branding
