package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevakumarJayaraman/gradle-plugins-suite/internal/domain"
)

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		wantGroup     string
		wantArtifact  string
		wantVersion   string
		wantVersioned bool
		wantOK        bool
	}{
		{
			name:         "two segments",
			input:        "org.sample:lib",
			wantGroup:    "org.sample",
			wantArtifact: "lib",
			wantOK:       true,
		},
		{
			name:          "three segments",
			input:         "org.sample:lib:1.2.3",
			wantGroup:     "org.sample",
			wantArtifact:  "lib",
			wantVersion:   "1.2.3",
			wantVersioned: true,
			wantOK:        true,
		},
		{
			name:          "extra segments join into version",
			input:         "org.sample:lib:1.2.3:sources",
			wantGroup:     "org.sample",
			wantArtifact:  "lib",
			wantVersion:   "1.2.3:sources",
			wantVersioned: true,
			wantOK:        true,
		},
		{
			name:          "empty third segment is still versioned",
			input:         "org.sample:lib:",
			wantGroup:     "org.sample",
			wantArtifact:  "lib",
			wantVersioned: true,
			wantOK:        true,
		},
		{name: "single segment", input: "junit", wantOK: false},
		{name: "empty group", input: ":lib", wantOK: false},
		{name: "empty artifact", input: "org.sample:", wantOK: false},
		{name: "empty string", input: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := domain.ParseCoordinate(tt.input)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantGroup, got.Group)
				assert.Equal(t, tt.wantArtifact, got.Artifact)
				assert.Equal(t, tt.wantVersion, got.Version)
				assert.Equal(t, tt.wantVersioned, got.Versioned())
			}
		})
	}
}

func TestCoordinateKeyIgnoresVersion(t *testing.T) {
	versioned, _ := domain.ParseCoordinate("org.sample:lib:2.0.0")
	unversioned, _ := domain.ParseCoordinate("org.sample:lib")

	assert.Equal(t, unversioned.Key(), versioned.Key())

	set := domain.ModuleSet{}
	set.Add(versioned)
	assert.True(t, set.Contains(unversioned))
}

func TestViolationMessage(t *testing.T) {
	explicit := domain.Violation{
		File:       "app/build.gradle.kts",
		Coordinate: "org.sample:lib:1.2.3",
		Reason:     domain.ReasonExplicitVersion,
	}
	assert.Equal(t,
		"Found direct version in app/build.gradle.kts -> org.sample:lib:1.2.3",
		explicit.Message())

	unversioned := domain.Violation{
		File:       "app/build.gradle.kts",
		Coordinate: "org.sample:lib",
		Reason:     domain.ReasonNoConstraint,
	}
	assert.Equal(t,
		"Found direct dependency without version in app/build.gradle.kts -> org.sample:lib (no constraint found)",
		unversioned.Message())
}

func TestRegionContains(t *testing.T) {
	r := domain.Region{Start: 10, End: 20}

	assert.True(t, r.Contains(10))
	assert.True(t, r.Contains(19))
	assert.False(t, r.Contains(20))
	assert.False(t, r.Contains(9))
}
