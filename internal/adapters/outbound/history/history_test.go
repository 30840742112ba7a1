package history_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevakumarJayaraman/gradle-plugins-suite/internal/adapters/outbound/history"
	"github.com/DevakumarJayaraman/gradle-plugins-suite/internal/domain"
)

func TestHistory_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	entry := domain.AuditEntry{
		Timestamp:    time.Date(2026, 2, 25, 10, 0, 0, 0, time.UTC),
		CommitHash:   "abc1234",
		FilesScanned: 12,
		Violations:   3,
	}

	require.NoError(t, h.Save(dir, entry))

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 3, entries[0].Violations)
	assert.Equal(t, "abc1234", entries[0].CommitHash)
}

func TestHistory_AppendsEntries(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	require.NoError(t, h.Save(dir, domain.AuditEntry{Violations: 5}))
	require.NoError(t, h.Save(dir, domain.AuditEntry{Violations: 0}))

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 5, entries[0].Violations)
	assert.Equal(t, 0, entries[1].Violations)
}

func TestHistory_LoadMissingFile(t *testing.T) {
	entries, err := history.New().Load(t.TempDir())

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHistory_LoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	h := history.New()
	require.NoError(t, h.Save(dir, domain.AuditEntry{}))

	fp := filepath.Join(dir, ".gradleguard", "history.json")
	require.NoError(t, os.WriteFile(fp, []byte("not json"), 0o644))

	_, err := h.Load(dir)
	assert.Error(t, err)
}
