package application

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/DevakumarJayaraman/gradle-plugins-suite/internal/domain"
	"github.com/DevakumarJayaraman/gradle-plugins-suite/internal/domain/audit"
)

// AuditService orchestrates the dependency-declaration audit:
// discover build files -> extract constraints everywhere -> classify
// declarations -> fold per-file violations into one report.
//
// The two phases are a hard barrier, not a streaming pipeline: the
// constrained module set must be complete before any file is classified,
// because a constraint in one file can exempt a declaration in another.
type AuditService struct {
	scanner domain.BuildFileScanner
	loader  domain.ConfigLoader
	catalog domain.CatalogReader
	git     domain.GitInfo
}

func NewAuditService(
	scanner domain.BuildFileScanner,
	loader domain.ConfigLoader,
	catalog domain.CatalogReader,
	git domain.GitInfo,
) *AuditService {
	return &AuditService{
		scanner: scanner,
		loader:  loader,
		catalog: catalog,
		git:     git,
	}
}

// analyzedFile carries one build file through the pipeline.
type analyzedFile struct {
	path        string
	text        string
	constraints audit.FileConstraints
}

// Audit runs the full audit over projectPath. Policy violations are data in
// the returned report, not errors; the error return is reserved for
// precondition failures (unreadable files, bad config).
func (s *AuditService) Audit(projectPath string) (*domain.VerificationReport, error) {
	return s.audit(projectPath, "")
}

// AuditFile audits a single build file (relative to projectPath). The
// constrained module set is still computed project-wide, so constraints in
// other files keep exempting declarations in this one.
func (s *AuditService) AuditFile(projectPath, file string) (*domain.VerificationReport, error) {
	return s.audit(projectPath, filepath.ToSlash(file))
}

func (s *AuditService) audit(projectPath, onlyFile string) (*domain.VerificationReport, error) {
	cfg, err := s.loader.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	scan, err := s.scanner.Scan(projectPath, cfg.ExcludePaths...)
	if err != nil {
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	report := &domain.VerificationReport{
		Root:         scan.RootPath,
		Timestamp:    time.Now(),
		FilesScanned: scan.BuildFiles,
	}
	if s.git != nil && s.git.IsGitRepo(projectPath) {
		if hash, err := s.git.CommitHash(projectPath); err == nil {
			report.CommitHash = hash
		}
	}

	// Phase 1: read every file and aggregate the constrained module set.
	// Reading is a precondition for analysis, so a read failure fails the
	// whole run rather than silently under-checking.
	constrained := domain.ModuleSet{}
	files := make([]analyzedFile, 0, len(scan.BuildFiles))
	for _, rel := range scan.BuildFiles {
		data, err := os.ReadFile(filepath.Join(scan.RootPath, filepath.FromSlash(rel)))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", rel, err)
		}
		af := analyzedFile{
			path:        rel,
			text:        string(data),
			constraints: audit.ExtractConstraints(string(data), cfg.LookaheadWindow),
		}
		if af.constraints.Malformed {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("malformed constraints block in %s: remainder of file not constraint-checked", rel))
		}
		constrained.Merge(af.constraints.Pinned)
		files = append(files, af)
	}

	catalogModules, err := s.catalog.Modules(projectPath)
	if err != nil {
		return nil, fmt.Errorf("reading version catalog: %w", err)
	}
	constrained.Merge(catalogModules)

	if cfg.FailOnMalformed && len(report.Warnings) > 0 {
		return nil, fmt.Errorf("%d build file(s) have malformed constraints blocks", len(report.Warnings))
	}

	// Phase 2: classify declarations per file and fold the results.
	scanner := audit.NewScanner(constrained, cfg.Configurations())
	for _, af := range files {
		if onlyFile != "" && af.path != onlyFile {
			continue
		}
		// Malformed files are classified only up to the point extraction
		// could follow; the unmatched remainder stays under-checked.
		text := af.text[:af.constraints.TruncatedFrom]
		report.Violations = append(report.Violations,
			scanner.ScanFile(af.path, text, af.constraints.Regions)...)
	}

	if onlyFile != "" && !containsFile(scan.BuildFiles, onlyFile) {
		return nil, fmt.Errorf("build file %q not found in project", onlyFile)
	}

	return report, nil
}

func containsFile(files []string, target string) bool {
	for _, f := range files {
		if f == target {
			return true
		}
	}
	return false
}
