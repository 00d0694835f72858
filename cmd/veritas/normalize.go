// cmd/veritas/normalize.go
package main

import (
	"fmt"
	"strconv"
	"time"
)

// normalizeResult coerces whatever mapping the model produced into the
// canonical result shape. It is total: any mapping, however sparse or
// wrong-typed, yields a well-formed VerificationResult.
func normalizeResult(raw map[string]interface{}, claim, domainKey string, fallbackSources []string) *VerificationResult {
	result := &VerificationResult{
		Claim:       claim,
		Domain:      domainKey,
		Status:      statusUnverified,
		Explanation: explanationFallback,
		CheckedAt:   time.Now().UTC(),
	}

	if v := stringField(raw, "claim"); v != "" {
		result.Claim = v
	}
	if v := stringField(raw, "domain"); v != "" {
		result.Domain = v
	}
	if v := stringField(raw, "status"); v != "" {
		result.Status = v
	}
	if v := stringField(raw, "explanation"); v != "" {
		result.Explanation = v
	}

	result.Confidence = coerceConfidence(raw["confidence"])

	result.Sources = coerceSources(raw["sources"])
	if len(result.Sources) == 0 {
		result.Sources = append([]string(nil), fallbackSources...)
	}

	return result
}

func stringField(raw map[string]interface{}, key string) string {
	if v, ok := raw[key].(string); ok {
		return v
	}
	return ""
}

// coerceConfidence turns whatever the model reported into a float in
// [0,1]. Anything unparsable coerces to 0.
func coerceConfidence(v interface{}) float64 {
	var value float64
	switch c := v.(type) {
	case float64:
		value = c
	case float32:
		value = float64(c)
	case int:
		value = float64(c)
	case string:
		parsed, err := strconv.ParseFloat(c, 64)
		if err != nil {
			return 0
		}
		value = parsed
	default:
		return 0
	}

	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}

// coerceSources accepts a list of URLs or institution names in any of the
// shapes JSON decoding can produce, preserving order and dropping empties
func coerceSources(v interface{}) []string {
	switch s := v.(type) {
	case []string:
		out := make([]string, 0, len(s))
		for _, item := range s {
			if item != "" {
				out = append(out, item)
			}
		}
		return out
	case []interface{}:
		out := make([]string, 0, len(s))
		for _, item := range s {
			switch entry := item.(type) {
			case string:
				if entry != "" {
					out = append(out, entry)
				}
			case map[string]interface{}:
				// Some models return {"url": ...} objects
				if u := stringField(entry, "url"); u != "" {
					out = append(out, u)
				}
			case nil:
				// skip
			default:
				out = append(out, fmt.Sprint(entry))
			}
		}
		return out
	case string:
		if s != "" {
			return []string{s}
		}
	}
	return nil
}
