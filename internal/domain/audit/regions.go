package audit

import (
	"regexp"
	"strings"

	"github.com/DevakumarJayaraman/gradle-plugins-suite/internal/domain"
)

var (
	constraintsRe = regexp.MustCompile(`\bconstraints\b`)
	quotedRe      = regexp.MustCompile(`"[^"\n]*"|'[^'\n]*'`)

	// versionMarkerRe signals that an unversioned coordinate inside a
	// constraints block still receives a version nearby, either through a
	// strictly(...) call or a version { ... } configuration.
	versionMarkerRe = regexp.MustCompile(`strictly\s*\(|\bversion\b`)
)

// FileConstraints is the per-file output of constraint extraction: the spans
// of every well-formed constraints block and the (group, artifact) pairs
// those blocks pin to a version.
type FileConstraints struct {
	Regions   []domain.Region
	Pinned    domain.ModuleSet
	Malformed bool

	// TruncatedFrom is the offset at which extraction gave up on malformed
	// input, or len(text) when the whole file was extracted. Text past this
	// point cannot be trusted and is not classified; the file is
	// under-checked, which is why callers surface Malformed as a warning.
	TruncatedFrom int
}

// ExtractConstraints locates every `constraints { ... }` block in text using
// a depth-counting brace matcher, so nested blocks (version lambdas, because
// calls) do not end a region early.
//
// Malformed input (a constraints keyword with no block, or braces that
// never balance) stops extraction for the remainder of the file. Regions
// already matched are kept and Malformed is set so the caller can warn.
func ExtractConstraints(text string, lookahead int) FileConstraints {
	fc := FileConstraints{Pinned: domain.ModuleSet{}, TruncatedFrom: len(text)}
	if lookahead <= 0 {
		lookahead = domain.DefaultLookaheadWindow
	}

	pos := 0
	for pos < len(text) {
		loc := constraintsRe.FindStringIndex(text[pos:])
		if loc == nil {
			break
		}
		kwStart := pos + loc[0]
		open := pos + loc[1]
		for open < len(text) && isSpace(text[open]) {
			open++
		}
		if open >= len(text) || text[open] != '{' {
			fc.Malformed = true
			fc.TruncatedFrom = kwStart
			break
		}
		end, ok := matchBrace(text, open)
		if !ok {
			fc.Malformed = true
			fc.TruncatedFrom = kwStart
			break
		}
		fc.Regions = append(fc.Regions, domain.Region{Start: kwStart, End: end})
		collectPinned(text[open+1:end-1], lookahead, fc.Pinned)
		pos = end
	}
	return fc
}

// matchBrace returns the index just past the brace that balances text[open].
func matchBrace(text string, open int) (int, bool) {
	depth := 0
	for i := open; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i + 1, true
			}
		}
	}
	return 0, false
}

// collectPinned runs the two coordinate-extraction passes over a region's
// inner text. Versioned coordinates pin their (group, artifact) pair
// unconditionally. Unversioned coordinates pin only when a version marker
// appears within the lookahead window after the match; this window is a
// heuristic, not a structural parse, and will miss markers placed further
// away.
func collectPinned(inner string, lookahead int, set domain.ModuleSet) {
	for _, m := range quotedRe.FindAllStringIndex(inner, -1) {
		c, ok := parseQuoted(inner[m[0]:m[1]])
		if !ok {
			continue
		}
		if c.Versioned() {
			set.Add(c)
			continue
		}
		windowEnd := m[1] + lookahead
		if windowEnd > len(inner) {
			windowEnd = len(inner)
		}
		if versionMarkerRe.MatchString(inner[m[1]:windowEnd]) {
			set.Add(c)
		}
	}
}

// parseQuoted strips the quotes from a matched string literal and parses it
// as a coordinate.
func parseQuoted(quoted string) (domain.Coordinate, bool) {
	return coordinateFrom(quoted[1 : len(quoted)-1])
}

// coordinateFrom parses raw as a module coordinate. Strings with whitespace
// are prose and strings with slashes are URLs or paths; neither is a
// coordinate, however many colons they contain.
func coordinateFrom(raw string) (domain.Coordinate, bool) {
	if strings.ContainsAny(raw, " \t/") {
		return domain.Coordinate{}, false
	}
	return domain.ParseCoordinate(raw)
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func inRegion(regions []domain.Region, offset int) bool {
	for _, r := range regions {
		if r.Contains(offset) {
			return true
		}
	}
	return false
}
