// Package diag keeps the component's diagnostic stream visible to the
// operator. Diagnostics (like a rejected logo payload) are written through
// zerolog to both the log file and an in-memory ring buffer that the UI
// renders in its diagnostics view.
package diag
