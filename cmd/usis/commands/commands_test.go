package commands_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itzMRZ/usisportal/cmd/usis/commands"
	"github.com/itzMRZ/usisportal/internal/core/domain"
	"github.com/itzMRZ/usisportal/internal/engine/loader"
	"github.com/itzMRZ/usisportal/internal/engine/match"
	"github.com/itzMRZ/usisportal/internal/engine/query"
)

// mockApp records the calls the commands make against the facade.
type mockApp struct {
	configPath string
	selected   string
	filterText string
	sortKey    string
	sortDir    query.Direction
	page       int
	loadAllErr error
	selectErr  error
	outcomes   []loader.Outcome
	courses    []domain.Course
	matches    match.Result
}

func (m *mockApp) SetConfigPath(path string) { m.configPath = path }

func (m *mockApp) LoadAll(context.Context) ([]loader.Outcome, error) {
	return m.outcomes, m.loadAllErr
}

func (m *mockApp) SelectSemester(_ context.Context, semesterID string) ([]domain.Course, error) {
	m.selected = semesterID
	return m.courses, m.selectErr
}

func (m *mockApp) Filter(text string) { m.filterText = text }

func (m *mockApp) Sort(key string, dir query.Direction) {
	m.sortKey = key
	m.sortDir = dir
}

func (m *mockApp) CurrentPage() []domain.Course { return m.courses }
func (m *mockApp) Filtered() []domain.Course    { return m.courses }

func (m *mockApp) PaginationInfo() query.Info {
	return query.Info{Page: 1, TotalPages: 1}
}

func (m *mockApp) SetPage(page int) error {
	m.page = page
	return nil
}

func (m *mockApp) MatchesFor(domain.Course) match.Result { return m.matches }

func (m *mockApp) Provenance(string) (domain.Provenance, bool) {
	return domain.ProvenanceLive, true
}

func execute(t *testing.T, mock *mockApp, args ...string) (string, error) {
	t.Helper()

	cli := commands.New(mock)
	cli.SetArgs(args)

	out := new(bytes.Buffer)
	cli.SetOutput(out, out)
	err := cli.Execute(context.Background())
	return out.String(), err
}

func TestCommands_Courses(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	t.Run("wires flags correctly", func(t *testing.T) {
		mock := &mockApp{
			courses: []domain.Course{{Code: "CSE110", Section: "1", Faculty: "ABC", Room: "UB1234"}},
		}

		out, err := execute(t, mock,
			"courses", "summer25",
			"--filter", "CSE",
			"--sort", query.KeyFaculty,
			"--dir", "desc",
			"--page", "2",
		)
		require.NoError(t, err)

		assert.Equal(t, "summer25", mock.selected)
		assert.Equal(t, "CSE", mock.filterText)
		assert.Equal(t, query.KeyFaculty, mock.sortKey)
		assert.Equal(t, query.Descending, mock.sortDir)
		assert.Equal(t, 2, mock.page)
		assert.Contains(t, out, "CSE110")
		assert.Contains(t, out, "page 1 of 1")
	})

	t.Run("rejects unknown sort direction", func(t *testing.T) {
		mock := &mockApp{}

		_, err := execute(t, mock, "courses", "summer25", "--dir", "sideways")
		assert.ErrorIs(t, err, domain.ErrUnknownSortDirection)
		assert.Empty(t, mock.selected)
	})

	t.Run("propagates select failure", func(t *testing.T) {
		mock := &mockApp{selectErr: domain.ErrUnknownSemester}

		_, err := execute(t, mock, "courses", "winter99")
		assert.ErrorIs(t, err, domain.ErrUnknownSemester)
	})

	t.Run("renders hints for TBA faculty", func(t *testing.T) {
		mock := &mockApp{
			courses: []domain.Course{{Code: "CSE110", Section: "1", Faculty: domain.TBA, Room: domain.TBA}},
			matches: match.Result{
				SectionHistory: []match.Entry{{Faculty: "Dr. X", Section: "1", SemesterID: "spring25"}},
			},
		}

		out, err := execute(t, mock, "courses", "summer25", "--hints")
		require.NoError(t, err)
		assert.Contains(t, out, "Dr. X")
		assert.Contains(t, out, "Section history")
	})

	t.Run("all pages skips pagination line", func(t *testing.T) {
		mock := &mockApp{
			courses: []domain.Course{{Code: "CSE110", Section: "1", Faculty: "ABC"}},
		}

		out, err := execute(t, mock, "courses", "summer25", "--all-pages")
		require.NoError(t, err)
		assert.NotContains(t, out, "page 1 of 1")
	})
}

func TestCommands_Load(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	t.Run("prints one line per semester", func(t *testing.T) {
		mock := &mockApp{
			outcomes: []loader.Outcome{
				{SemesterID: "summer25", Provenance: domain.ProvenanceLive, Count: 42},
				{SemesterID: "fall24", Err: domain.ErrSemesterLoadFailed},
			},
		}

		out, err := execute(t, mock, "load")
		require.NoError(t, err)
		assert.Contains(t, out, "summer25: 42 courses (live)")
		assert.Contains(t, out, "fall24: load failed")
	})

	t.Run("fails when nothing loaded", func(t *testing.T) {
		mock := &mockApp{loadAllErr: domain.ErrAllSemestersFailed}

		_, err := execute(t, mock, "load")
		assert.ErrorIs(t, err, domain.ErrAllSemestersFailed)
	})
}

func TestCommands_ConfigFlag(t *testing.T) {
	mock := &mockApp{}

	_, err := execute(t, mock, "--config", "custom/usis.yaml", "load")
	require.NoError(t, err)
	assert.Equal(t, "custom/usis.yaml", mock.configPath)
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}

	out, err := execute(t, mock, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "usis version")
}
