// cmd/veritas/verify.go
package main

import (
	"context"
	"time"
)

// VerificationResult is the canonical output of the pipeline. Every code
// path through the orchestrator returns a value satisfying this shape.
type VerificationResult struct {
	Claim       string    `json:"claim"`
	Domain      string    `json:"domain"`
	Status      string    `json:"status"`
	Confidence  float64   `json:"confidence"`
	Explanation string    `json:"explanation"`
	Sources     []string  `json:"sources"`
	Method      string    `json:"method"`
	CheckedAt   time.Time `json:"checked_at"`
}

// Stage identifiers recorded on results and in metrics
const (
	methodFactCheck    = "factcheck"
	methodNewsModel    = "news+model"
	methodTrustedModel = "trusted+model"
	methodFallback     = "fallback"
	methodCache        = "cache"
)

// Verifier drives the three-stage fallback cascade. Stages run strictly
// in sequence: each is a fallback for the previous one's failure or
// insufficiency, and the first satisfying stage short-circuits the rest.
// No stage is ever retried.
type Verifier struct {
	factCheck *FactCheckClient
	news      *NewsClient
	gen       Generator
	table     *TrustedSourceTable
	policy    Policy
	cache     *Cache
}

// NewVerifier wires the pipeline clients from configuration
func NewVerifier(cfg *Config, table *TrustedSourceTable, cache *Cache) *Verifier {
	return &Verifier{
		factCheck: NewFactCheckClient(cfg.FactCheckAPIKey),
		news:      NewNewsClient(cfg.NewsAPIKey, cfg.EnableNewsRSS),
		gen:       NewOpenAIGenerator(cfg.OpenAIAPIKey, cfg.Model),
		table:     table,
		policy:    cfg.Policy,
		cache:     cache,
	}
}

// Verify classifies a claim within a topic domain. The caller must reject
// empty claims; the orchestrator does not guard against them. No error
// ever crosses this boundary: weak evidence surfaces as low confidence,
// never as a failure.
func (v *Verifier) Verify(ctx context.Context, claim, domain string) *VerificationResult {
	domainKey := v.table.Normalize(domain)

	cacheKey := claim + "|" + domainKey
	if v.cache != nil {
		if cached, found := v.cache.Get(cacheKey); found {
			if result, ok := cached.(*VerificationResult); ok {
				RecordVerification(methodCache)
				return result
			}
		}
	}

	result := v.run(ctx, claim, domainKey)

	if v.cache != nil {
		v.cache.Set(cacheKey, result)
	}
	RecordVerification(result.Method)

	return result
}

// run executes the cascade for a normalized domain key
func (v *Verifier) run(ctx context.Context, claim, domainKey string) *VerificationResult {
	// Stage 1: structured fact-check search. A matched claim is curated,
	// high-precision data and is trusted unconditionally.
	if resp, err := v.factCheck.Search(ctx, claim); err != nil {
		if !IsStageDisabled(err) {
			Logger().Warning("Fact-check search failed, falling through: %v", err)
		}
	} else if resp != nil && len(resp.Claims) > 0 {
		var review ClaimReview
		if len(resp.Claims[0].ClaimReview) > 0 {
			review = resp.Claims[0].ClaimReview[0]
		}
		return resultFromReview(claim, domainKey, review, v.policy.FactCheckConfidence)
	}

	// Stage 2: live news evidence plus grounded generation
	urls, err := v.news.Search(ctx, claim)
	if err != nil && !IsStageDisabled(err) {
		Logger().Warning("News search failed, falling through: %v", err)
	}
	if len(urls) > 0 {
		text, genErr := v.gen.Generate(ctx, buildEvidencePrompt(claim, domainKey, urls))
		if genErr == nil {
			if raw, ok := extractJSON(text); ok {
				result := normalizeResult(raw, claim, domainKey, urls)
				result.Method = methodNewsModel
				return result
			}
		} else if !IsStageDisabled(genErr) {
			Logger().Warning("Model generation failed on news evidence: %v", genErr)
		}

		// Evidence existed but the model produced nothing usable. Still a
		// completed verification, just low-confidence.
		return v.degraded(claim, domainKey, v.policy.DegradedConfidence,
			"Insufficient verifiable evidence from news and the model response could not be parsed.",
			urls, methodNewsModel)
	}

	// Stage 3: no live evidence; ground the model in the domain's
	// trusted-source names.
	trusted := v.table.Sources(domainKey)
	text, genErr := v.gen.Generate(ctx, buildTrustedPrompt(claim, domainKey, trusted))
	if genErr == nil {
		if raw, ok := extractJSON(text); ok {
			result := normalizeResult(raw, claim, domainKey, trusted)
			result.Method = methodTrustedModel
			return result
		}
	} else if !IsStageDisabled(genErr) {
		Logger().Warning("Model generation failed on trusted sources: %v", genErr)
	}

	// Terminal fallback: nothing produced a usable answer
	return v.degraded(claim, domainKey, v.policy.FallbackConfidence,
		"No fact-check or news results were found and the model produced no parseable response.",
		trusted, methodFallback)
}

// degraded builds a fixed low-confidence result for paths where no
// parseable model output was obtained
func (v *Verifier) degraded(claim, domainKey string, confidence float64, explanation string, sources []string, method string) *VerificationResult {
	return &VerificationResult{
		Claim:       claim,
		Domain:      domainKey,
		Status:      statusUnverified,
		Confidence:  confidence,
		Explanation: explanation,
		Sources:     append([]string(nil), sources...),
		Method:      method,
		CheckedAt:   time.Now().UTC(),
	}
}

// Domains exposes the recognized domain keys for the front ends
func (v *Verifier) Domains() []string {
	return v.table.Domains()
}
