package trendsobs

import (
	"context"

	"crypto-advisor/internal/interfaces"
	"crypto-advisor/internal/logger"
	"crypto-advisor/internal/trace"
	"crypto-advisor/internal/types"
)

// observableSearcher wraps a TrendSearcher with observability
// (logging & tracing)
type observableSearcher struct {
	searcher interfaces.TrendSearcher
}

// Compile-time interface check
var _ interfaces.TrendSearcher = (*observableSearcher)(nil)

// Wrap wraps a trend searcher with observability middleware
func Wrap(searcher interfaces.TrendSearcher) interfaces.TrendSearcher {
	return &observableSearcher{searcher: searcher}
}

// Search runs a trend search with observability
func (os *observableSearcher) Search(ctx context.Context, query string, num int) ([]types.TrendItem, error) {
	ctx, span := trace.StartSpan(ctx, "trends.Search")
	defer span.End()

	logger.DebugSkip(ctx, 1, "Searching trends", "query", query, "num", num)

	items, err := os.searcher.Search(ctx, query, num)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Trend search failed", err, "query", query)
		return nil, err
	}

	logger.InfoSkip(ctx, 1, "Trend search completed", "query", query, "items", len(items))
	return items, nil
}
