// cmd/veritas/prompt.go
package main

import (
	"fmt"
	"strings"
)

// buildEvidencePrompt instructs the model to classify the claim using
// exactly the given evidence URLs and to answer in strict JSON.
func buildEvidencePrompt(claim, domainKey string, sources []string) string {
	return fmt.Sprintf(`Claim: %q
Domain: %s
Use these sources: %s.
Verify if the claim is True/False/Misleading/Unverified.
Respond ONLY in JSON with the following keys:
- claim (string)
- domain (string)
- status (True/False/Misleading/Unverified)
- confidence (float between 0 and 1)
- explanation (string)
- sources (list of URLs)
Return strictly valid JSON only.`, claim, domainKey, strings.Join(sources, ", "))
}

// buildTrustedPrompt grounds the model in the domain's trusted-source
// names when no live evidence exists, requiring the same JSON schema.
func buildTrustedPrompt(claim, domainKey string, trusted []string) string {
	return fmt.Sprintf(`Domain: %s
Trusted sources: %s.
Claim: %q
Return JSON with the keys: claim, domain, status, confidence, explanation, sources (list).
If unsure, set status to "Unverified" and confidence between 0 and 1.`, domainKey, strings.Join(trusted, ", "), claim)
}
