// Package qrcode generates PNG QR codes with base64 data URI support.
//
// Interview booking emails embed a QR code for the candidate's booking page
// so the link survives print-outs and forwarded emails. Output uses medium
// error correction and defaults to 256px, a size that scans reliably on
// phones without bloating the email body.
package qrcode
