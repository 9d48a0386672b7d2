package trends

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"crypto-advisor/internal/api"
	"crypto-advisor/internal/store"
	"crypto-advisor/internal/types"
)

// CustomSearch queries the Google Custom Search JSON API.
type CustomSearch struct {
	client *api.Client
	apiKey string
	cseID  string
}

// NewCustomSearch creates a searcher using the given credentials. Empty
// credentials are allowed; Search then fails and the caller falls back.
func NewCustomSearch(cfg *store.Config, apiKey, cseID string) *CustomSearch {
	baseURL := "https://www.googleapis.com"
	if ep := os.Getenv("GOOGLE_CSE_ENDPOINT"); ep != "" {
		baseURL = ep
	}
	return &CustomSearch{
		client: api.NewClient(
			api.WithBaseURL(baseURL),
			api.WithTimeout(time.Duration(cfg.Search.TimeoutSeconds)*time.Second),
			api.WithLogging(true),
		),
		apiKey: apiKey,
		cseID:  cseID,
	}
}

// Configured reports whether API credentials are present.
func (s *CustomSearch) Configured() bool {
	return s.apiKey != "" && s.cseID != ""
}

// Search runs one query and extracts up to num title/link/snippet triples.
// Zero results yields an empty slice, not an error.
func (s *CustomSearch) Search(ctx context.Context, query string, num int) ([]types.TrendItem, error) {
	if !s.Configured() {
		return nil, errors.New("custom search credentials not configured")
	}

	q := url.Values{}
	q.Set("key", s.apiKey)
	q.Set("cx", s.cseID)
	q.Set("q", query)
	q.Set("num", fmt.Sprintf("%d", num))

	resp, err := s.client.GET(ctx, "/customsearch/v1?"+q.Encode())
	if err != nil {
		return nil, err
	}

	var body struct {
		Items []struct {
			Title       string `json:"title"`
			Link        string `json:"link"`
			Snippet     string `json:"snippet"`
			HTMLSnippet string `json:"htmlSnippet"`
		} `json:"items"`
	}
	if err := resp.ParseJSON(&body); err != nil {
		return nil, err
	}

	items := make([]types.TrendItem, 0, len(body.Items))
	for _, it := range body.Items {
		if len(items) >= num {
			break
		}
		snippet := it.Snippet
		if snippet == "" && it.HTMLSnippet != "" {
			snippet = stripMarkup(it.HTMLSnippet)
		}
		items = append(items, types.TrendItem{
			Title:   it.Title,
			Link:    it.Link,
			Snippet: snippet,
		})
	}
	return items, nil
}

// stripMarkup reduces an HTML snippet to its text content.
func stripMarkup(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}
	return strings.TrimSpace(doc.Text())
}
