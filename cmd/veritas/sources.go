// cmd/veritas/sources.go
package main

import (
	"os"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

// defaultTrustedSources maps each recognized domain to the institutions
// used as grounding context in the last-resort generation stage. They are
// prompt context only; evidence is never validated against them.
var defaultTrustedSources = map[string][]string{
	"Health":     {"WHO", "CDC", "NIH", "ICMR", "PubMed", "MedlinePlus"},
	"Politics":   {"Election Commission", "UN", "Reuters", "BBC", "Press Information Bureau India"},
	"Science":    {"Nature", "Science", "arXiv", "IEEE", "PLOS"},
	"Finance":    {"RBI", "SEBI", "World Bank", "IMF", "Economic Times"},
	"Climate":    {"IPCC", "NASA Climate", "NOAA", "UNEP", "MoEFCC India"},
	"Technology": {"IEEE", "ACM", "Nature Tech", "ScienceDirect"},
	"General":    {"Reuters", "BBC", "AP News", "The Hindu"},
}

// sourcesFile is the on-disk shape of config/sources.yml
type sourcesFile struct {
	TrustedSources map[string][]string `yaml:"trusted_sources"`
	Policy         *Policy             `yaml:"policy"`
}

// TrustedSourceTable holds the domain to trusted-sources mapping.
// Read-only after initialization.
type TrustedSourceTable struct {
	domains map[string][]string
	titler  cases.Caser
}

// NewTrustedSourceTable builds a table from the built-in defaults
func NewTrustedSourceTable() *TrustedSourceTable {
	domains := make(map[string][]string, len(defaultTrustedSources))
	for k, v := range defaultTrustedSources {
		domains[k] = append([]string(nil), v...)
	}
	return &TrustedSourceTable{
		domains: domains,
		titler:  cases.Title(language.English),
	}
}

// LoadTrustedSources reads config/sources.yml if present, overlaying the
// built-in table and optionally overriding the confidence policy. A
// missing file is not an error; the defaults ship with the binary.
func LoadTrustedSources(path string, policy *Policy) (*TrustedSourceTable, error) {
	table := NewTrustedSourceTable()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return table, nil
		}
		return table, NewConfigError(ErrConfigLoad, "failed to read sources file", err)
	}

	var file sourcesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return table, NewConfigError(ErrConfigLoad, "failed to parse sources file", err)
	}

	for domain, sources := range file.TrustedSources {
		key := table.titler.String(strings.ToLower(strings.TrimSpace(domain)))
		if key == "" || len(sources) == 0 {
			continue
		}
		table.domains[key] = append([]string(nil), sources...)
	}

	if file.Policy != nil && policy != nil {
		if file.Policy.FactCheckConfidence > 0 {
			policy.FactCheckConfidence = file.Policy.FactCheckConfidence
		}
		if file.Policy.DegradedConfidence > 0 {
			policy.DegradedConfidence = file.Policy.DegradedConfidence
		}
		if file.Policy.FallbackConfidence > 0 {
			policy.FallbackConfidence = file.Policy.FallbackConfidence
		}
	}

	return table, nil
}

// Normalize title-cases the input domain and collapses anything outside
// the recognized set to the default domain key.
func (t *TrustedSourceTable) Normalize(domain string) string {
	key := t.titler.String(strings.ToLower(strings.TrimSpace(domain)))
	if _, ok := t.domains[key]; !ok {
		return defaultDomainKey
	}
	return key
}

// Sources returns a copy of the trusted-source list for a normalized
// domain key
func (t *TrustedSourceTable) Sources(domainKey string) []string {
	sources, ok := t.domains[domainKey]
	if !ok {
		sources = t.domains[defaultDomainKey]
	}
	return append([]string(nil), sources...)
}

// Domains returns the recognized domain keys in sorted order
func (t *TrustedSourceTable) Domains() []string {
	keys := make([]string, 0, len(t.domains))
	for k := range t.domains {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
