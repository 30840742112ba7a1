package history

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/DevakumarJayaraman/gradle-plugins-suite/internal/domain"
)

const historyFile = ".gradleguard/history.json"

// FileHistory implements domain.AuditHistory using JSON file storage, so a
// project can track its violation count across commits.
type FileHistory struct{}

func New() *FileHistory {
	return &FileHistory{}
}

func (h *FileHistory) Save(projectPath string, entry domain.AuditEntry) error {
	entries, err := h.Load(projectPath)
	if err != nil {
		return err
	}

	entries = append(entries, entry)

	fp := filepath.Join(projectPath, filepath.FromSlash(historyFile))
	if err := os.MkdirAll(filepath.Dir(fp), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(fp, data, 0o644)
}

func (h *FileHistory) Load(projectPath string) ([]domain.AuditEntry, error) {
	fp := filepath.Join(projectPath, filepath.FromSlash(historyFile))

	data, err := os.ReadFile(fp)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.AuditEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}
