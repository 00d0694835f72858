// cmd/veritas/factcheck.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ClaimReview represents a single published review of a claim, as
// returned by the Google Fact Check Tools API
type ClaimReview struct {
	Publisher struct {
		Name string `json:"name"`
		Site string `json:"site"`
	} `json:"publisher"`
	URL           string `json:"url"`
	Title         string `json:"title"`
	ReviewDate    string `json:"reviewDate"`
	TextualRating string `json:"textualRating"`
	Explanation   string `json:"explanation"`
	LanguageCode  string `json:"languageCode"`
}

// FactCheckClaim represents one previously adjudicated claim
type FactCheckClaim struct {
	Text        string        `json:"text"`
	Claimant    string        `json:"claimant"`
	ClaimDate   string        `json:"claimDate"`
	ClaimReview []ClaimReview `json:"claimReview"`
}

// ClaimSearchResponse is the top-level claims:search response. A 2xx
// response with no claims means no match, not an error.
type ClaimSearchResponse struct {
	Claims        []FactCheckClaim `json:"claims"`
	NextPageToken string           `json:"nextPageToken"`
}

// FactCheckClient queries the structured fact-check aggregation service
type FactCheckClient struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// NewFactCheckClient creates a fact-check search client
func NewFactCheckClient(apiKey string) *FactCheckClient {
	return &FactCheckClient{
		apiKey:   apiKey,
		endpoint: factCheckEndpoint,
		client: &http.Client{
			Timeout: searchTimeout,
		},
	}
}

// Search queries the fact-check service for adjudicated claims matching
// the query text. All failures come back as typed errors for the
// orchestrator to absorb; nothing is retried.
func (c *FactCheckClient) Search(ctx context.Context, query string) (*ClaimSearchResponse, error) {
	if c.apiKey == "" {
		return nil, NewFactCheckError(ErrFactCheckDisabled, "no fact-check credential configured", nil)
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, NewFactCheckError(ErrFactCheckRequest, "failed to build request", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, NewFactCheckError(ErrFactCheckRequest, "request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, NewFactCheckError(ErrFactCheckStatus, fmt.Sprintf("unexpected status %s", resp.Status), nil)
	}

	var result ClaimSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, NewFactCheckError(ErrFactCheckDecode, "failed to decode response", err)
	}

	return &result, nil
}

// resultFromReview builds a terminal result from the first review of a
// matched claim. Structured fact-check hits are treated as high-trust
// ground truth and bypass normalization.
func resultFromReview(claim, domainKey string, review ClaimReview, confidence float64) *VerificationResult {
	status := firstNonEmpty(review.TextualRating, review.Title, statusUnverified)
	explanation := firstNonEmpty(review.Title, review.TextualRating, review.Explanation)

	var sources []string
	if review.URL != "" {
		sources = []string{review.URL}
	}

	return &VerificationResult{
		Claim:       claim,
		Domain:      domainKey,
		Status:      status,
		Confidence:  confidence,
		Explanation: explanation,
		Sources:     sources,
		Method:      methodFactCheck,
		CheckedAt:   time.Now().UTC(),
	}
}
