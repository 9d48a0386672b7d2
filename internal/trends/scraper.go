package trends

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"

	"crypto-advisor/internal/logger"
	"crypto-advisor/internal/types"
)

// Scraper pulls headlines from Google News. Used as a fallback when no
// Custom Search credentials are configured or the API call fails.
type Scraper struct {
	baseURL string
	timeout time.Duration
}

// NewScraper creates a scraper bound to the Google News search page. The
// base URL can be overridden with GOOGLE_NEWS_ENDPOINT.
func NewScraper(timeout time.Duration) *Scraper {
	baseURL := "https://news.google.com"
	if ep := os.Getenv("GOOGLE_NEWS_ENDPOINT"); ep != "" {
		baseURL = ep
	}
	return &Scraper{baseURL: baseURL, timeout: timeout}
}

// Search scrapes the news results page for the query and returns up to num
// trend items. Article snippets are the visible teaser text when present.
func (s *Scraper) Search(ctx context.Context, query string, num int) ([]types.TrendItem, error) {
	items := []types.TrendItem{}

	c := colly.NewCollector(
		colly.AllowedDomains(s.allowedDomain()),
	)
	c.SetRequestTimeout(s.timeout)

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	})

	c.OnHTML("article", func(e *colly.HTMLElement) {
		if len(items) >= num {
			return
		}

		title := strings.TrimSpace(e.ChildText("h3, h4"))
		link := e.ChildAttr("a", "href")
		if title == "" || link == "" {
			return
		}

		// Clean up Google News redirect URL
		if strings.HasPrefix(link, "./articles/") {
			link = s.baseURL + link[1:]
		}

		items = append(items, types.TrendItem{
			Title:   title,
			Link:    link,
			Snippet: strings.TrimSpace(e.ChildText("p, span")),
		})
	})

	c.OnError(func(r *colly.Response, err error) {
		logger.ErrorWithErr(ctx, "Trend scraping error", err, "url", r.Request.URL.String())
	})

	searchURL := fmt.Sprintf("%s/search?q=%s&hl=en-US&gl=US&ceid=US:en",
		s.baseURL, url.QueryEscape(query))

	if err := c.Visit(searchURL); err != nil {
		return nil, fmt.Errorf("failed to scrape Google News: %w", err)
	}
	c.Wait()

	logger.Info(ctx, "Google News scraping completed", "query", query, "items", len(items))
	return items, nil
}

func (s *Scraper) allowedDomain() string {
	u, err := url.Parse(s.baseURL)
	if err != nil || u.Hostname() == "" {
		return "news.google.com"
	}
	return u.Hostname()
}
