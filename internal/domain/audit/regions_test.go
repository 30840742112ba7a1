package audit_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevakumarJayaraman/gradle-plugins-suite/internal/domain"
	"github.com/DevakumarJayaraman/gradle-plugins-suite/internal/domain/audit"
)

func TestExtractConstraints_VersionedCoordinates(t *testing.T) {
	text := `
dependencies {
    constraints {
        implementation("org.sample:lib:2.0.0")
        api('org.other:thing:1.0')
    }
}
`
	fc := audit.ExtractConstraints(text, 0)

	require.Len(t, fc.Regions, 1)
	assert.False(t, fc.Malformed)

	lib, _ := domain.ParseCoordinate("org.sample:lib")
	thing, _ := domain.ParseCoordinate("org.other:thing")
	assert.True(t, fc.Pinned.Contains(lib))
	assert.True(t, fc.Pinned.Contains(thing))
}

func TestExtractConstraints_NestedBraces(t *testing.T) {
	// The version lambda nests braces inside the constraints block. A naive
	// "find next }" matcher would end the region before the second
	// coordinate.
	text := `
constraints {
    implementation("org.sample:first") {
        version { strictly("1.4") }
    }
    implementation("org.sample:second:2.0")
}
implementation("org.sample:outside:3.0")
`
	fc := audit.ExtractConstraints(text, 0)

	require.Len(t, fc.Regions, 1)

	first, _ := domain.ParseCoordinate("org.sample:first")
	second, _ := domain.ParseCoordinate("org.sample:second")
	outside, _ := domain.ParseCoordinate("org.sample:outside")
	assert.True(t, fc.Pinned.Contains(first), "unversioned with strictly marker is pinned")
	assert.True(t, fc.Pinned.Contains(second))
	assert.False(t, fc.Pinned.Contains(outside), "coordinates after the region are not pinned")

	region := fc.Regions[0]
	assert.False(t, region.Contains(len(text)-20), "region ends before trailing declaration")
}

func TestExtractConstraints_LookaheadWindowBoundsMarkerSearch(t *testing.T) {
	// Marker placed beyond a tiny window: the pair must not be pinned.
	text := `constraints { implementation("org.sample:far") /* padding padding */ version { strictly("1.0") } }`

	fc := audit.ExtractConstraints(text, 5)

	far, _ := domain.ParseCoordinate("org.sample:far")
	assert.False(t, fc.Pinned.Contains(far))

	// Same text with the default window finds the marker.
	fc = audit.ExtractConstraints(text, 0)
	assert.True(t, fc.Pinned.Contains(far))
}

func TestExtractConstraints_MarkerRequiresWordBoundary(t *testing.T) {
	// "version" embedded in a longer word is not a version marker; the
	// coordinate stays unpinned.
	text := `constraints {
    implementation("org.sample:bare")
    // conversion helpers live in versionCatalogUpdate.gradle.kts
}`
	fc := audit.ExtractConstraints(text, 0)

	bare, _ := domain.ParseCoordinate("org.sample:bare")
	assert.False(t, fc.Pinned.Contains(bare))
}

func TestExtractConstraints_UnversionedWithoutMarkerNotPinned(t *testing.T) {
	text := `constraints { implementation("org.sample:bare") }`

	fc := audit.ExtractConstraints(text, 0)

	bare, _ := domain.ParseCoordinate("org.sample:bare")
	assert.False(t, fc.Pinned.Contains(bare))
}

func TestExtractConstraints_MultipleRegions(t *testing.T) {
	text := `
constraints { implementation("org.a:one:1.0") }
dependencies { implementation("org.b:loose") }
constraints { implementation("org.c:two:2.0") }
`
	fc := audit.ExtractConstraints(text, 0)

	require.Len(t, fc.Regions, 2)
	one, _ := domain.ParseCoordinate("org.a:one")
	two, _ := domain.ParseCoordinate("org.c:two")
	loose, _ := domain.ParseCoordinate("org.b:loose")
	assert.True(t, fc.Pinned.Contains(one))
	assert.True(t, fc.Pinned.Contains(two))
	assert.False(t, fc.Pinned.Contains(loose))
}

func TestExtractConstraints_UnbalancedBracesKeepPriorRegions(t *testing.T) {
	text := `
constraints { implementation("org.a:kept:1.0") }
constraints { implementation("org.b:lost:2.0")
`
	fc := audit.ExtractConstraints(text, 0)

	assert.True(t, fc.Malformed)
	require.Len(t, fc.Regions, 1, "well-formed region before the malformed one is kept")
	assert.Less(t, fc.TruncatedFrom, len(text), "extraction stopped at the malformed block")
	assert.Greater(t, fc.TruncatedFrom, fc.Regions[0].End)

	kept, _ := domain.ParseCoordinate("org.a:kept")
	lost, _ := domain.ParseCoordinate("org.b:lost")
	assert.True(t, fc.Pinned.Contains(kept))
	assert.False(t, fc.Pinned.Contains(lost))
}

func TestExtractConstraints_KeywordWithoutBlock(t *testing.T) {
	text := `// see the constraints documentation`

	fc := audit.ExtractConstraints(text, 0)

	assert.True(t, fc.Malformed)
	assert.Empty(t, fc.Regions)
	assert.Empty(t, fc.Pinned)
	assert.Equal(t, strings.Index(text, "constraints"), fc.TruncatedFrom)
}

func TestExtractConstraints_NoRegions(t *testing.T) {
	fc := audit.ExtractConstraints(`dependencies { implementation("org.a:b:1.0") }`, 0)

	assert.False(t, fc.Malformed)
	assert.Empty(t, fc.Regions)
	assert.Empty(t, fc.Pinned)
}

func TestExtractConstraints_WellFormedFileNotTruncated(t *testing.T) {
	text := `constraints { implementation("org.a:b:1.0") }`

	fc := audit.ExtractConstraints(text, 0)

	assert.Equal(t, len(text), fc.TruncatedFrom)
}

func TestExtractConstraints_ProseStringsIgnored(t *testing.T) {
	text := `constraints { because("reason: keep versions: central") implementation("org.a:b:1.0") }`

	fc := audit.ExtractConstraints(text, 0)

	b, _ := domain.ParseCoordinate("org.a:b")
	assert.True(t, fc.Pinned.Contains(b))
	assert.Len(t, fc.Pinned, 1, "strings with whitespace are not coordinates")
}
