package api

import (
	"context"

	"github.com/ytget/media-browser/internal/model"
)

// Fetcher defines the interface for the remote media API.
type Fetcher interface {
	Categories(ctx context.Context) ([]model.Category, error)
	Media(ctx context.Context, categoryID string) ([]model.MediaItem, error)

	// Image returns raw thumbnail or profile picture bytes
	Image(ctx context.Context, rawURL string) ([]byte, error)
}
