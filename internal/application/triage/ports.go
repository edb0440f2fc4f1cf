// Package triage builds prompts for the inference service and parses its
// free-form answers into ticket classifications.
package triage

import "context"

// CompletionRequest is a single-turn prompt, optionally with one image.
type CompletionRequest struct {
	Model  string
	System string
	Prompt string
	Image  []byte
}

// Completer is the opaque inference service.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// Post is one public discussion fetched for a digest.
type Post struct {
	ID        string
	Title     string
	Body      string
	Subreddit string
	Author    string
	Score     int
	Comments  int
	URL       string
	CreatedAt int64
}

// PostSource finds recent public posts mentioning a query.
type PostSource interface {
	Search(ctx context.Context, query string, limit int) ([]Post, error)
}
