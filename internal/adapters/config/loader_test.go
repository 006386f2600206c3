package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itzMRZ/usisportal/internal/adapters/config"
	"github.com/itzMRZ/usisportal/internal/core/domain"
)

type noopLogger struct{}

func (noopLogger) Info(string) {}
func (noopLogger) Warn(string) {}
func (noopLogger) Error(error) {}

type recordingLogger struct {
	noopLogger
	warnings []string
}

func (r *recordingLogger) Warn(msg string) { r.warnings = append(r.warnings, msg) }

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), domain.CatalogFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FullCatalog(t *testing.T) {
	path := writeCatalog(t, `
feedUrl: https://cdn.example.net/connect.json
dataDir: data
pageSize: 25
cacheTtlMinutes: 30
semesters:
  - id: summer25
    name: Summer 2025
    file: summer25.json
    year: "2025"
    format: spring25
    current: true
  - id: fall24
    name: Fall 2024
    file: fall24.json
    year: "2024"
    format: old
`)

	loader := config.NewLoader(noopLogger{})
	catalog, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.net/connect.json", catalog.FeedURL)
	assert.Equal(t, 25, catalog.PageSize)
	assert.Equal(t, 30*time.Minute, catalog.CacheTTL)
	require.Len(t, catalog.Semesters, 2)

	current, ok := catalog.Current()
	require.True(t, ok)
	assert.Equal(t, "summer25", current.ID)
	assert.Equal(t, domain.FormatSpring25, current.Format)

	sem, err := catalog.Semester("fall24")
	require.NoError(t, err)
	assert.Equal(t, domain.FormatOld, sem.Format)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeCatalog(t, `
feedUrl: https://cdn.example.net/connect.json
semesters:
  - id: summer25
    file: summer25.json
    format: spring25
`)

	catalog, err := config.NewLoader(noopLogger{}).Load(path)
	require.NoError(t, err)

	assert.Equal(t, 50, catalog.PageSize)
	assert.Equal(t, time.Hour, catalog.CacheTTL)
	assert.Equal(t, "data", catalog.DataDir)
}

func TestLoad_NoCurrentSemesterWarns(t *testing.T) {
	path := writeCatalog(t, `
semesters:
  - id: fall24
    file: fall24.json
    format: old
`)

	log := &recordingLogger{}
	catalog, err := config.NewLoader(log).Load(path)
	require.NoError(t, err)

	_, ok := catalog.Current()
	assert.False(t, ok)
	require.Len(t, log.warnings, 1)
	assert.Contains(t, log.warnings[0], "no semester flagged current")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.NewLoader(noopLogger{}).Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigReadFailed.Error())
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeCatalog(t, "feedUrl: [unclosed")

	_, err := config.NewLoader(noopLogger{}).Load(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigParseFailed.Error())
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name: "missing id",
			content: `
semesters:
  - name: Nameless
    format: old
`,
			wantErr: domain.ErrMissingSemesterID,
		},
		{
			name: "duplicate id",
			content: `
semesters:
  - id: fall24
    format: old
  - id: fall24
    format: old
`,
			wantErr: domain.ErrDuplicateSemester,
		},
		{
			name: "unknown format",
			content: `
semesters:
  - id: fall24
    format: csv
`,
			wantErr: domain.ErrUnknownSchemaFormat,
		},
		{
			name: "two current semesters",
			content: `
semesters:
  - id: summer25
    format: spring25
    current: true
  - id: fall25
    format: spring25
    current: true
`,
			wantErr: domain.ErrMultipleCurrent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCatalog(t, tt.content)
			_, err := config.NewLoader(noopLogger{}).Load(path)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
