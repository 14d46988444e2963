package repository

import "context"

// DocumentRepo persists rendered contract text and reports where it went.
// Implementations must replace any previous content in full.
type DocumentRepo interface {
	Write(ctx context.Context, text string) (string, error)
}
