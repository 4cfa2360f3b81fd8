// Package site serves the embedded questionnaire page.
package site

import (
	"context"
	"net/http"
)

// Register attaches the questionnaire page and its assets to mux. The
// pattern is the least specific GET route, so API routes take precedence.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}
	mux.Handle("GET /", http.FileServer(FS()))
}
