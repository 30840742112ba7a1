package domain

// BuildFileScanner enumerates Gradle build files under a project root.
type BuildFileScanner interface {
	Scan(projectPath string, excludePatterns ...string) (*ScanResult, error)
}

// ScanResult holds the discovered build files, relative to RootPath and
// sorted for deterministic downstream output.
type ScanResult struct {
	RootPath   string   `json:"root_path"`
	BuildFiles []string `json:"build_files"`
}

// ConfigLoader loads project-level auditor configuration.
type ConfigLoader interface {
	Load(projectPath string) (GuardConfig, error)
}

// GitInfo reports version-control metadata for a project root.
type GitInfo interface {
	IsGitRepo(projectPath string) bool
	CommitHash(projectPath string) (string, error)
}

// AuditHistory persists a record of past audit runs.
type AuditHistory interface {
	Save(projectPath string, entry AuditEntry) error
	Load(projectPath string) ([]AuditEntry, error)
}

// CatalogReader reads the project's version catalog, if one exists.
type CatalogReader interface {
	// Modules returns the (group, artifact) pairs pinned by the catalog.
	// A missing catalog file is not an error; it yields an empty set.
	Modules(projectPath string) (ModuleSet, error)
}
