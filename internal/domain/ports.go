package domain

import "context"

// CatalogSource supplies the product universe at session start and receives
// admin edits back. Load follows load-or-fail: a source that cannot produce
// its full list returns an error, never a partial catalog.
type CatalogSource interface {
	Load(ctx context.Context) ([]Product, error)
	Save(ctx context.Context, p *Product) error
}

// Recommender is the external recommendation collaborator. Implementations
// must treat every failure as recoverable; callers surface a fixed apology
// message instead of the error.
type Recommender interface {
	Recommend(ctx context.Context, userText string, catalog []Product) (string, error)
}
