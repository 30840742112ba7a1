// Package catalog reads and writes the Gradle version catalog
// (gradle/libs.versions.toml). The auditor treats catalog library entries as
// centrally pinned modules, the same policy role a dependencies.constraints
// block plays.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/DevakumarJayaraman/gradle-plugins-suite/internal/domain"
)

// RelPath is the conventional catalog location within a Gradle project.
const RelPath = "gradle/libs.versions.toml"

//go:embed libs.versions.toml
var seedCatalog []byte

// Store implements domain.CatalogReader and owns catalog generation.
type Store struct{}

func New() *Store { return &Store{} }

// catalogFile mirrors the TOML catalog schema. Library entries are decoded
// loosely because the format allows three shapes: a bare "g:a:v" string, a
// table with module = "g:a", or a table with separate group/name keys.
type catalogFile struct {
	Versions  map[string]any `toml:"versions"`
	Libraries map[string]any `toml:"libraries"`
	Plugins   map[string]any `toml:"plugins"`
}

// Modules returns the (group, artifact) pairs declared in the project's
// catalog. A missing catalog is not an error: the project simply has no
// catalog-pinned modules.
func (s *Store) Modules(projectPath string) (domain.ModuleSet, error) {
	set := domain.ModuleSet{}

	cat, err := s.load(projectPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return set, nil
		}
		return nil, err
	}

	for _, entry := range cat.Libraries {
		if c, ok := libraryCoordinate(entry); ok {
			set.Add(c)
		}
	}
	return set, nil
}

// Verify parses the catalog and returns the aliases whose version.ref points
// at a version key that does not exist. A missing catalog verifies clean.
func (s *Store) Verify(projectPath string) ([]string, error) {
	cat, err := s.load(projectPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var dangling []string
	for alias, entry := range cat.Libraries {
		ref, ok := versionRef(entry)
		if !ok {
			continue
		}
		if _, declared := cat.Versions[ref]; !declared {
			dangling = append(dangling, fmt.Sprintf("%s (version.ref = %q)", alias, ref))
		}
	}
	sort.Strings(dangling)
	return dangling, nil
}

// Init writes the bundled starter catalog to gradle/libs.versions.toml.
// An existing catalog is never overwritten unless force is set.
func (s *Store) Init(projectPath string, force bool) (string, error) {
	dest := filepath.Join(projectPath, filepath.FromSlash(RelPath))

	if !force {
		if _, err := os.Stat(dest); err == nil {
			return "", fmt.Errorf("%s already exists (use --force to overwrite)", RelPath)
		}
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("creating catalog directory: %w", err)
	}
	if err := os.WriteFile(dest, seedCatalog, 0o644); err != nil {
		return "", fmt.Errorf("writing catalog: %w", err)
	}
	return dest, nil
}

func (s *Store) load(projectPath string) (*catalogFile, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, filepath.FromSlash(RelPath)))
	if err != nil {
		return nil, err
	}

	var cat catalogFile
	if err := toml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", RelPath, err)
	}
	return &cat, nil
}

// libraryCoordinate extracts the (group, artifact) pair from one library
// entry, whatever shape it uses.
func libraryCoordinate(entry any) (domain.Coordinate, bool) {
	switch v := entry.(type) {
	case string:
		return domain.ParseCoordinate(v)
	case map[string]any:
		if module, ok := v["module"].(string); ok {
			return domain.ParseCoordinate(module)
		}
		group, gok := v["group"].(string)
		name, nok := v["name"].(string)
		if gok && nok && group != "" && name != "" {
			return domain.Coordinate{Group: group, Artifact: name}, true
		}
	}
	return domain.Coordinate{}, false
}

// versionRef extracts a version.ref key from a table-shaped library entry.
func versionRef(entry any) (string, bool) {
	table, ok := entry.(map[string]any)
	if !ok {
		return "", false
	}
	version, ok := table["version"].(map[string]any)
	if !ok {
		return "", false
	}
	ref, ok := version["ref"].(string)
	return ref, ok && ref != ""
}
