package audit

import (
	"regexp"
	"strings"

	"github.com/DevakumarJayaraman/gradle-plugins-suite/internal/domain"
)

// Scanner finds dependency-declaration call sites in build-file text and
// classifies each against the project-wide constrained module set. Build one
// per run, after constraint extraction over all files has finished: the set
// must be complete before any classification, since a constraint in one file
// can exempt a declaration in another.
type Scanner struct {
	constrained domain.ModuleSet
	pattern     *regexp.Regexp
}

// NewScanner compiles the declaration pattern for the given configuration
// vocabulary. Both the Kotlin DSL parenthesized form and the Groovy
// bare-token form are matched:
//
//	implementation("org.sample:lib")
//	implementation 'org.sample:lib:1.0'
func NewScanner(constrained domain.ModuleSet, configurations []string) *Scanner {
	escaped := make([]string, len(configurations))
	for i, kw := range configurations {
		escaped[i] = regexp.QuoteMeta(kw)
	}
	pattern := regexp.MustCompile(
		`\b(?:` + strings.Join(escaped, "|") + `)(?:\s*\(\s*|[ \t]+)("[^"\n]*"|'[^'\n]*')`)
	return &Scanner{constrained: constrained, pattern: pattern}
}

// ScanFile returns the violations found in one file. Classification order:
//
//  1. sites inside a constraints region of this file are exempt
//  2. coordinates with an explicit version always violate
//  3. unversioned coordinates violate unless constrained somewhere
//  4. anything else is not a coordinate and is ignored
//
// A secondary pass re-scans the whole text for quoted versioned coordinates
// the keyword vocabulary missed (custom configurations, catalog bundles
// declared oddly), deduplicated against the primary pass's violations by
// coordinate string.
func (s *Scanner) ScanFile(file, text string, regions []domain.Region) []domain.Violation {
	var violations []domain.Violation
	captured := make(map[string]bool)

	for _, m := range s.pattern.FindAllStringSubmatchIndex(text, -1) {
		offset := m[0]
		quoted := text[m[2]:m[3]]
		raw := quoted[1 : len(quoted)-1]

		// Only violating sites feed the dedup set. An exempt in-region
		// match must not shadow the same string at an unexempted site
		// elsewhere in the file.
		if v, ok := s.classify(file, raw, offset, regions); ok {
			violations = append(violations, v)
			captured[raw] = true
		}
	}

	for _, m := range quotedRe.FindAllStringIndex(text, -1) {
		c, ok := parseQuoted(text[m[0]:m[1]])
		if !ok || !c.Versioned() {
			continue
		}
		raw := text[m[0]+1 : m[1]-1]
		if captured[raw] || inRegion(regions, m[0]) {
			continue
		}
		captured[raw] = true
		violations = append(violations, domain.Violation{
			File:       file,
			Coordinate: raw,
			Reason:     domain.ReasonExplicitVersion,
			Offset:     m[0],
			Suggestion: CatalogAlias(c),
		})
	}

	return violations
}

func (s *Scanner) classify(file, raw string, offset int, regions []domain.Region) (domain.Violation, bool) {
	if inRegion(regions, offset) {
		return domain.Violation{}, false
	}
	c, ok := coordinateFrom(raw)
	if !ok {
		return domain.Violation{}, false
	}
	if c.Versioned() {
		return domain.Violation{
			File:       file,
			Coordinate: raw,
			Reason:     domain.ReasonExplicitVersion,
			Offset:     offset,
			Suggestion: CatalogAlias(c),
		}, true
	}
	if s.constrained.Contains(c) {
		return domain.Violation{}, false
	}
	return domain.Violation{
		File:       file,
		Coordinate: raw,
		Reason:     domain.ReasonNoConstraint,
		Offset:     offset,
		Suggestion: CatalogAlias(c),
	}, true
}
