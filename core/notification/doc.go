// Package notification defines the stored notification template records and
// the catalog of pipeline events that can trigger them. Template bodies are
// raw text in the dialect core/template resolves; nothing here evaluates
// them.
package notification
