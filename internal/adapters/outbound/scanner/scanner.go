package scanner

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/DevakumarJayaraman/gradle-plugins-suite/internal/domain"
)

// Directories that never contain build files worth auditing.
var skipDirs = map[string]bool{
	".git":         true,
	".gradle":      true,
	".idea":        true,
	"build":        true,
	"out":          true,
	"node_modules": true,
}

// Suffixes of the two recognized build-file forms: the Kotlin DSL and the
// legacy Groovy script.
var buildFileSuffixes = []string{".gradle.kts", ".gradle"}

// BuildFileScanner implements domain.BuildFileScanner by walking the
// filesystem.
type BuildFileScanner struct{}

func New() *BuildFileScanner {
	return &BuildFileScanner{}
}

// Scan enumerates Gradle build files under projectPath, skipping well-known
// output directories and any path matching one of the exclude glob patterns
// (doublestar syntax, so ** crosses directories). The result is sorted by
// relative path for deterministic reports.
func (s *BuildFileScanner) Scan(projectPath string, excludePatterns ...string) (*domain.ScanResult, error) {
	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, err
	}

	result := &domain.ScanResult{RootPath: absPath}

	err = filepath.WalkDir(absPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, _ := filepath.Rel(absPath, path)
		relPath = filepath.ToSlash(relPath)

		if d.IsDir() {
			if skipDirs[d.Name()] || matchesAny(excludePatterns, relPath) {
				return filepath.SkipDir
			}
			return nil
		}

		if !isBuildFile(d.Name()) || matchesAny(excludePatterns, relPath) {
			return nil
		}

		result.BuildFiles = append(result.BuildFiles, relPath)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(result.BuildFiles)
	return result, nil
}

func isBuildFile(name string) bool {
	for _, suffix := range buildFileSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

func matchesAny(patterns []string, relPath string) bool {
	if relPath == "." {
		return false
	}
	for _, p := range patterns {
		if ok, err := doublestar.Match(p, relPath); err == nil && ok {
			return true
		}
	}
	return false
}
