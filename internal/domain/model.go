package domain

import (
	"fmt"
	"strings"
	"time"
)

// Coordinate identifies a dependency as (group, artifact) with an optional
// version. Two-segment coordinates are "unversioned"; three or more segments
// carry an explicit version. Matching against constraints ignores the version.
type Coordinate struct {
	Group    string `json:"group"`
	Artifact string `json:"artifact"`
	Version  string `json:"version,omitempty"`

	// versioned records that the source string had three or more segments.
	// Distinct from Version being non-empty: "g:a:" carries an explicit
	// (empty, malformed) version and is still a versioned declaration.
	versioned bool
}

// ParseCoordinate splits a colon-delimited coordinate string. ok is false for
// strings with fewer than two segments or with an empty group or artifact;
// those are not dependency coordinates as far as the policy is concerned.
func ParseCoordinate(s string) (Coordinate, bool) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return Coordinate{}, false
	}
	c := Coordinate{Group: parts[0], Artifact: parts[1]}
	if len(parts) > 2 {
		c.Version = strings.Join(parts[2:], ":")
		c.versioned = true
	}
	return c, true
}

// Versioned reports whether the coordinate carries an explicit version.
func (c Coordinate) Versioned() bool { return c.versioned || c.Version != "" }

// Key is the (group, artifact) identity used for constraint matching.
func (c Coordinate) Key() string { return c.Group + ":" + c.Artifact }

func (c Coordinate) String() string {
	if c.Version == "" {
		return c.Group + ":" + c.Artifact
	}
	return c.Group + ":" + c.Artifact + ":" + c.Version
}

// ModuleSet is a set of (group, artifact) pairs, keyed by Coordinate.Key.
type ModuleSet map[string]struct{}

func (s ModuleSet) Add(c Coordinate)           { s[c.Key()] = struct{}{} }
func (s ModuleSet) Contains(c Coordinate) bool { _, ok := s[c.Key()]; return ok }

// Merge adds every entry of other into s.
func (s ModuleSet) Merge(other ModuleSet) {
	for k := range other {
		s[k] = struct{}{}
	}
}

// Region is the byte-offset span of one constraints block within a file,
// from the start of the introducing keyword to just past its closing brace.
type Region struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Contains reports whether offset falls inside the region.
func (r Region) Contains(offset int) bool { return offset >= r.Start && offset < r.End }

// ReasonKind classifies why a declaration violates the version policy.
type ReasonKind string

const (
	// ReasonExplicitVersion marks a declaration that hardcodes a version.
	ReasonExplicitVersion ReasonKind = "explicit-version-forbidden"
	// ReasonNoConstraint marks an unversioned declaration with no matching
	// constraint or catalog entry anywhere in the project.
	ReasonNoConstraint ReasonKind = "unversioned-without-constraint"
)

// Violation is one declaration site that fails the version policy.
type Violation struct {
	File       string     `json:"file"`
	Coordinate string     `json:"coordinate"`
	Reason     ReasonKind `json:"reason"`
	Offset     int        `json:"offset"`
	Suggestion string     `json:"suggestion,omitempty"`
}

// Message renders the violation in the fixed report format.
func (v Violation) Message() string {
	switch v.Reason {
	case ReasonNoConstraint:
		return fmt.Sprintf("Found direct dependency without version in %s -> %s (no constraint found)", v.File, v.Coordinate)
	default:
		return fmt.Sprintf("Found direct version in %s -> %s", v.File, v.Coordinate)
	}
}

// VerificationReport is the outcome of one audit run: every violation found
// across the project, in discovery order.
type VerificationReport struct {
	Root         string      `json:"root"`
	CommitHash   string      `json:"commit_hash,omitempty"`
	Timestamp    time.Time   `json:"timestamp"`
	FilesScanned []string    `json:"files_scanned"`
	Violations   []Violation `json:"violations"`
	Warnings     []string    `json:"warnings,omitempty"`
}

// Failed reports whether the audit found any violation.
func (r *VerificationReport) Failed() bool { return len(r.Violations) > 0 }

// AuditEntry is one line of audit history: the violation count for one run,
// tied to a commit when the project is a git repo.
type AuditEntry struct {
	Timestamp    time.Time `json:"timestamp"`
	CommitHash   string    `json:"commit_hash,omitempty"`
	FilesScanned int       `json:"files_scanned"`
	Violations   int       `json:"violations"`
}

// Entry summarizes the report for history storage.
func (r *VerificationReport) Entry() AuditEntry {
	return AuditEntry{
		Timestamp:    r.Timestamp,
		CommitHash:   r.CommitHash,
		FilesScanned: len(r.FilesScanned),
		Violations:   len(r.Violations),
	}
}
