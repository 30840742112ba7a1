package audit

import (
	"strings"

	"github.com/fatih/camelcase"

	"github.com/DevakumarJayaraman/gradle-plugins-suite/internal/domain"
)

// CatalogAlias renders the version-catalog accessor a violating declaration
// should use instead, derived from the artifact id the way Gradle derives
// catalog accessors: dash, underscore and dot separate segments, and
// camelCase humps split into their own segments.
//
//	org.sample:number-utils   -> libs.number.utils
//	org.sample:numberUtils    -> libs.number.utils
func CatalogAlias(c domain.Coordinate) string {
	var segs []string
	parts := strings.FieldsFunc(c.Artifact, func(r rune) bool {
		return r == '-' || r == '_' || r == '.'
	})
	for _, part := range parts {
		// camelcase.Split also breaks on letter/digit boundaries, which
		// would mangle names like slf4j; only split parts with real humps.
		if strings.ToLower(part) == part {
			segs = append(segs, part)
			continue
		}
		for _, w := range camelcase.Split(part) {
			if w = strings.ToLower(w); w != "" {
				segs = append(segs, w)
			}
		}
	}
	if len(segs) == 0 {
		return ""
	}
	return "libs." + strings.Join(segs, ".")
}
