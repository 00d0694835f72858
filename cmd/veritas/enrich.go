// cmd/veritas/enrich.go
package main

import (
	"context"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// SourcePreview carries display metadata for an evidence URL
type SourcePreview struct {
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
	Site  string `json:"site,omitempty"`
}

// SourceEnricher fetches evidence pages and extracts their titles for
// display. Enrichment is best effort: a page that cannot be fetched keeps
// its bare URL.
type SourceEnricher struct {
	client *http.Client
}

// NewSourceEnricher creates an enricher with a short per-page timeout
func NewSourceEnricher() *SourceEnricher {
	return &SourceEnricher{
		client: &http.Client{
			Timeout: enrichTimeout,
		},
	}
}

// Enrich resolves previews for up to maxEvidenceURLs source URLs.
// Non-URL entries (trusted institution names) pass through untouched.
func (e *SourceEnricher) Enrich(ctx context.Context, sources []string) []SourcePreview {
	previews := make([]SourcePreview, 0, len(sources))

	for i, src := range sources {
		preview := SourcePreview{URL: src}
		if i < maxEvidenceURLs && strings.HasPrefix(src, "http") {
			if title, site := e.fetchPageMeta(ctx, src); title != "" || site != "" {
				preview.Title = title
				preview.Site = site
			}
		}
		previews = append(previews, preview)
	}

	return previews
}

// fetchPageMeta pulls the <title> and og:site_name out of a page
func (e *SourceEnricher) fetchPageMeta(ctx context.Context, pageURL string) (string, string) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", ""
	}
	req.Header.Set("User-Agent", "VeritasBot/"+VERSION)

	resp, err := e.client.Do(req)
	if err != nil {
		return "", ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", ""
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", ""
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	site := strings.TrimSpace(doc.Find(`meta[property="og:site_name"]`).AttrOr("content", ""))

	return truncate(title, 120), truncate(site, 60)
}
