package catalog

import (
	"context"

	"github.com/serapeum-ai/serapeum/internal/domain"
)

// MediaSearcher queries the movie/TV catalog.
type MediaSearcher interface {
	SearchMedia(ctx context.Context, query, language string) ([]domain.MediaItem, error)
}

// BookSearcher queries the book catalog.
type BookSearcher interface {
	SearchBooks(ctx context.Context, query, language string) ([]domain.BookItem, error)
}

// GameSearcher queries the game catalog.
type GameSearcher interface {
	SearchGames(ctx context.Context, query, language string) ([]domain.GameItem, error)
}
