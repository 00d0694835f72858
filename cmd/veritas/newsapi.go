// cmd/veritas/newsapi.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/mmcdole/gofeed"
	"golang.org/x/time/rate"
)

// newsAPIResponse is the NewsAPI /v2/everything response shape
type newsAPIResponse struct {
	Status       string `json:"status"`
	TotalResults int    `json:"totalResults"`
	Articles     []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Title       string `json:"title"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
	} `json:"articles"`
}

// NewsClient finds candidate evidence URLs for a claim. NewsAPI is the
// primary provider; Google News RSS serves as a keyless fallback so the
// web-evidence stage stays alive without a NewsAPI credential.
type NewsClient struct {
	apiKey   string
	endpoint string
	feedURL  string
	client   *http.Client
	parser   *gofeed.Parser
	limiter  *rate.Limiter
}

// NewNewsClient creates a news search client
func NewNewsClient(apiKey string, enableRSS bool) *NewsClient {
	feedURL := ""
	if enableRSS {
		feedURL = googleNewsRSSEndpoint
	}
	return &NewsClient{
		apiKey:   apiKey,
		endpoint: newsAPIEndpoint,
		feedURL:  feedURL,
		client: &http.Client{
			Timeout: searchTimeout,
		},
		parser:  gofeed.NewParser(),
		limiter: rate.NewLimiter(rate.Every(time.Second), 5),
	}
}

// Search returns up to maxEvidenceURLs article URLs for the claim,
// preserving relevance order. Failures are typed errors; the caller
// treats any error the same as an empty list.
func (c *NewsClient) Search(ctx context.Context, claim string) ([]string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, NewNewsError(ErrNewsRequest, "rate limiter interrupted", err)
	}

	if c.apiKey != "" {
		urls, err := c.searchNewsAPI(ctx, claim)
		if err == nil && len(urls) > 0 {
			return urls, nil
		}
		if err != nil {
			Logger().Debug("NewsAPI search failed: %v", err)
		}
	}

	if c.feedURL != "" {
		return c.searchGoogleNews(ctx, claim)
	}

	if c.apiKey == "" {
		return nil, NewNewsError(ErrNewsDisabled, "no news credential configured and RSS fallback disabled", nil)
	}
	return nil, nil
}

// searchNewsAPI queries NewsAPI sorted by relevancy with a small page size
func (c *NewsClient) searchNewsAPI(ctx context.Context, claim string) ([]string, error) {
	params := url.Values{}
	params.Set("q", claim)
	params.Set("apiKey", c.apiKey)
	params.Set("pageSize", fmt.Sprintf("%d", newsPageSize))
	params.Set("sortBy", "relevancy")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, NewNewsError(ErrNewsRequest, "failed to build request", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, NewNewsError(ErrNewsRequest, "request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, NewNewsError(ErrNewsStatus, fmt.Sprintf("unexpected status %s", resp.Status), nil)
	}

	var result newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, NewNewsError(ErrNewsDecode, "failed to decode response", err)
	}

	urls := make([]string, 0, maxEvidenceURLs)
	for _, article := range result.Articles {
		if article.URL == "" {
			continue
		}
		urls = append(urls, article.URL)
		if len(urls) == maxEvidenceURLs {
			break
		}
	}
	return urls, nil
}

// searchGoogleNews queries the Google News search feed for the claim
func (c *NewsClient) searchGoogleNews(ctx context.Context, claim string) ([]string, error) {
	feedURL := fmt.Sprintf("%s?q=%s&hl=en-US&gl=US&ceid=US:en", c.feedURL, url.QueryEscape(claim))

	feed, err := c.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, NewNewsError(ErrNewsRequest, "feed fetch failed", err)
	}

	urls := make([]string, 0, maxEvidenceURLs)
	for _, item := range feed.Items {
		if item.Link == "" {
			continue
		}
		urls = append(urls, item.Link)
		if len(urls) == maxEvidenceURLs {
			break
		}
	}
	return urls, nil
}
