package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	text  string
	err   error
	calls int
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

// jsonServer returns an httptest server answering every request with the
// given body and counts how many requests it saw
func jsonServer(t *testing.T, body string, hits *int) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			*hits++
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func newTestVerifier(factCheckURL, newsURL string, gen Generator) *Verifier {
	fc := NewFactCheckClient("")
	if factCheckURL != "" {
		fc = NewFactCheckClient("test-key")
		fc.endpoint = factCheckURL
	}

	news := NewNewsClient("", false)
	if newsURL != "" {
		news = NewNewsClient("test-key", false)
		news.endpoint = newsURL
	}

	return &Verifier{
		factCheck: fc,
		news:      news,
		gen:       gen,
		table:     NewTrustedSourceTable(),
		policy: Policy{
			FactCheckConfidence: defaultFactCheckConfidence,
			DegradedConfidence:  defaultDegradedConfidence,
			FallbackConfidence:  defaultFallbackConfidence,
		},
		cache: NewCache(time.Minute, 100),
	}
}

const factCheckHit = `{
	"claims": [{
		"text": "Vaccines cause autism",
		"claimReview": [{
			"publisher": {"name": "CDC", "site": "cdc.gov"},
			"url": "https://cdc.gov/x",
			"title": "Debunked by CDC",
			"textualRating": "False"
		}]
	}]
}`

const newsHits = `{
	"status": "ok",
	"totalResults": 2,
	"articles": [
		{"title": "first", "url": "https://news.example/a"},
		{"title": "second", "url": "https://news.example/b"}
	]
}`

func TestVerifyFactCheckHitIsTerminal(t *testing.T) {
	newsCalls := 0
	gen := &stubGenerator{text: `{"status": "True"}`}

	fcServer := jsonServer(t, factCheckHit, nil)
	newsServer := jsonServer(t, newsHits, &newsCalls)

	v := newTestVerifier(fcServer.URL, newsServer.URL, gen)
	result := v.Verify(context.Background(), "Vaccines cause autism", "Health")

	require.NotNil(t, result)
	assert.Equal(t, "False", result.Status)
	assert.Equal(t, defaultFactCheckConfidence, result.Confidence)
	assert.Equal(t, "Debunked by CDC", result.Explanation)
	assert.Equal(t, []string{"https://cdc.gov/x"}, result.Sources)
	assert.Equal(t, "Health", result.Domain)
	assert.Equal(t, methodFactCheck, result.Method)

	// Later stages must not even be invoked
	assert.Zero(t, newsCalls)
	assert.Zero(t, gen.calls)
}

func TestVerifyDegradedWhenModelUnparsable(t *testing.T) {
	gen := &stubGenerator{text: "I cannot answer in the requested format."}

	fcServer := jsonServer(t, `{}`, nil)
	newsServer := jsonServer(t, newsHits, nil)

	v := newTestVerifier(fcServer.URL, newsServer.URL, gen)
	result := v.Verify(context.Background(), "some breaking claim", "Politics")

	assert.Equal(t, statusUnverified, result.Status)
	assert.Equal(t, defaultDegradedConfidence, result.Confidence)
	assert.Equal(t, []string{"https://news.example/a", "https://news.example/b"}, result.Sources)
	assert.Equal(t, methodNewsModel, result.Method)
	assert.Equal(t, 1, gen.calls)
}

func TestVerifyNormalizesParsedModelOutput(t *testing.T) {
	gen := &stubGenerator{text: "```json\n{\"status\": \"True\", \"confidence\": 0.85, \"explanation\": \"confirmed by coverage\"}\n```"}

	fcServer := jsonServer(t, `{}`, nil)
	newsServer := jsonServer(t, newsHits, nil)

	v := newTestVerifier(fcServer.URL, newsServer.URL, gen)
	result := v.Verify(context.Background(), "confirmed claim", "Science")

	assert.Equal(t, "True", result.Status)
	assert.Equal(t, 0.85, result.Confidence)
	assert.Equal(t, "confirmed by coverage", result.Explanation)
	// Model omitted sources, so the evidence URLs substitute
	assert.Equal(t, []string{"https://news.example/a", "https://news.example/b"}, result.Sources)
	assert.Equal(t, methodNewsModel, result.Method)
}

func TestVerifyFullFallback(t *testing.T) {
	gen := &stubGenerator{text: "no json at all"}

	fcServer := jsonServer(t, `{}`, nil)

	v := newTestVerifier(fcServer.URL, "", gen)
	result := v.Verify(context.Background(), "obscure claim nobody covered", "Health")

	assert.Equal(t, statusUnverified, result.Status)
	assert.Equal(t, defaultFallbackConfidence, result.Confidence)
	assert.Equal(t, v.table.Sources("Health"), result.Sources)
	assert.Equal(t, methodFallback, result.Method)
	// Generation attempted once, with trusted sources only
	assert.Equal(t, 1, gen.calls)
}

func TestVerifyTrustedSourceStageParses(t *testing.T) {
	gen := &stubGenerator{text: `{"status": "Misleading", "confidence": 0.6}`}

	v := newTestVerifier("", "", gen)
	result := v.Verify(context.Background(), "claim with no live evidence", "Climate")

	assert.Equal(t, "Misleading", result.Status)
	assert.Equal(t, 0.6, result.Confidence)
	assert.Equal(t, v.table.Sources("Climate"), result.Sources)
	assert.Equal(t, methodTrustedModel, result.Method)
}

func TestVerifyUnknownDomainCollapsesToGeneral(t *testing.T) {
	gen := &stubGenerator{err: NewModelError(ErrModelNotConfigured, "model credential not configured", nil)}

	v := newTestVerifier("", "", gen)
	result := v.Verify(context.Background(), "anything", "astrology")

	assert.Equal(t, "General", result.Domain)
	assert.Equal(t, v.table.Sources("General"), result.Sources)
	assert.Equal(t, defaultFallbackConfidence, result.Confidence)
}

func TestVerifyResultsAreCached(t *testing.T) {
	gen := &stubGenerator{text: `{"status": "True", "confidence": 0.8}`}

	v := newTestVerifier("", "", gen)

	first := v.Verify(context.Background(), "repeat claim", "General")
	second := v.Verify(context.Background(), "repeat claim", "general")

	assert.Same(t, first, second)
	assert.Equal(t, 1, gen.calls)
}

func TestVerifyTransportFailureFallsThrough(t *testing.T) {
	gen := &stubGenerator{text: `{"status": "Unverified", "confidence": 0.2}`}

	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(failing.Close)

	v := newTestVerifier(failing.URL, "", gen)
	result := v.Verify(context.Background(), "claim", "Finance")

	// Fact-check 500 and missing news evidence cascade to the
	// trusted-source stage without surfacing any error
	assert.Equal(t, methodTrustedModel, result.Method)
	assert.Equal(t, 0.2, result.Confidence)
}
