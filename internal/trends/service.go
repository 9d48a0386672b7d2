package trends

import (
	"context"
	"time"

	"crypto-advisor/internal/logger"
	"crypto-advisor/internal/store"
	"crypto-advisor/internal/types"
)

// Service searches for trends via the Custom Search API, falling back to the
// Google News scraper when the API is unconfigured or the call fails.
type Service struct {
	search  *CustomSearch
	scraper *Scraper
}

func NewService(cfg *store.Config, apiKey, cseID string) *Service {
	return &Service{
		search:  NewCustomSearch(cfg, apiKey, cseID),
		scraper: NewScraper(time.Duration(cfg.Search.TimeoutSeconds) * time.Second),
	}
}

func (s *Service) Search(ctx context.Context, query string, num int) ([]types.TrendItem, error) {
	if s.search.Configured() {
		// Zero results is a valid answer, not a fallback trigger.
		items, err := s.search.Search(ctx, query, num)
		if err == nil {
			return items, nil
		}
		logger.ErrorWithErr(ctx, "Custom search failed, trying news scraper", err, "query", query)
	} else {
		logger.Info(ctx, "Custom search not configured, using news scraper", "query", query)
	}

	return s.scraper.Search(ctx, query, num)
}
