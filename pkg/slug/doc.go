// Package slug generates URL-safe slugs from arbitrary strings with Unicode
// normalization.
//
// Diacritics are stripped via NFD decomposition (é → e, ñ → n), everything
// outside [a-z0-9] collapses into a single separator, and an optional length
// cap truncates without leaving a trailing separator. Used for notification
// template slugs and development email filenames.
//
//	slug.Make("Café & Restaurant")          // "cafe-restaurant"
//	slug.Make("Offer: Señor Dev", slug.MaxLength(10)) // "offer-seno"
package slug
