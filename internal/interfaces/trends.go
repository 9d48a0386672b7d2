package interfaces

import (
	"context"

	"crypto-advisor/internal/types"
)

// TrendSearcher runs a web search and returns up to num result triples.
// Zero results is not an error.
type TrendSearcher interface {
	Search(ctx context.Context, query string, num int) ([]types.TrendItem, error)
}
