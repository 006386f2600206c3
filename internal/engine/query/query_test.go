package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itzMRZ/usisportal/internal/core/domain"
	"github.com/itzMRZ/usisportal/internal/engine/query"
)

func course(code, section, faculty string) domain.Course {
	return domain.Course{Code: code, Section: section, Faculty: faculty, FacultyInitial: faculty}
}

func seated(code string, available int) domain.Course {
	c := course(code, "1", "X")
	c.Seats = &domain.SeatInfo{Available: available}
	return c
}

func TestFilter(t *testing.T) {
	data := []domain.Course{
		course("CSE110", "1", "Dr. Karim"),
		course("CSE220", "2", "TBA"),
		{Code: "MAT110", Section: "5", Faculty: "Dr. Karim", Schedule: []domain.TimeSlot{{Day: "SUN", Start: 480}}},
	}

	t.Run("by code", func(t *testing.T) {
		got := query.Filter(data, "cse")
		require.Len(t, got, 2)
	})

	t.Run("by faculty", func(t *testing.T) {
		got := query.Filter(data, "karim")
		require.Len(t, got, 2)
	})

	t.Run("by rendered schedule", func(t *testing.T) {
		got := query.Filter(data, "sun 8:00 am")
		require.Len(t, got, 1)
		assert.Equal(t, "MAT110", got[0].Code)
	})

	t.Run("blank text returns copy of everything", func(t *testing.T) {
		got := query.Filter(data, "   ")
		require.Len(t, got, len(data))
		got[0].Code = "mutated"
		assert.Equal(t, "CSE110", data[0].Code)
	})

	t.Run("idempotent", func(t *testing.T) {
		once := query.Filter(data, "karim")
		twice := query.Filter(once, "karim")
		assert.Equal(t, once, twice)
	})
}

func TestSort_CodePrimary(t *testing.T) {
	data := []domain.Course{
		course("MAT110", "2", "A"),
		course("CSE110", "2", "B"),
		course("CSE110", "1", "C"),
	}

	asc := query.Sort(data, query.KeyCode, query.Ascending)
	require.Equal(t, "CSE110", asc[0].Code)
	// Code tie broken by section ascending.
	assert.Equal(t, "1", asc[0].Section)
	assert.Equal(t, "2", asc[1].Section)
	assert.Equal(t, "MAT110", asc[2].Code)

	desc := query.Sort(data, query.KeyCode, query.Descending)
	assert.Equal(t, "MAT110", desc[0].Code)
}

func TestSort_SectionPrimary(t *testing.T) {
	data := []domain.Course{
		course("MAT110", "1", "A"),
		course("CSE110", "2", "B"),
		course("ANT101", "1", "C"),
	}

	got := query.Sort(data, query.KeySection, query.Ascending)
	// Section tie broken by code ascending.
	assert.Equal(t, "ANT101", got[0].Code)
	assert.Equal(t, "MAT110", got[1].Code)
	assert.Equal(t, "CSE110", got[2].Code)
}

func TestSort_OtherKeyForcesCodeAscendingTiebreak(t *testing.T) {
	data := []domain.Course{
		course("MAT110", "1", "Zahid"),
		course("ANT101", "1", "Zahid"),
		course("CSE110", "1", "Ayesha"),
	}

	// Faculty descending: Zahid rows first, but the tie between them is
	// code ASCENDING even though the primary direction is descending.
	got := query.Sort(data, query.KeyFaculty, query.Descending)
	assert.Equal(t, "ANT101", got[0].Code)
	assert.Equal(t, "MAT110", got[1].Code)
	assert.Equal(t, "CSE110", got[2].Code)
}

func TestSort_AvailableDescending(t *testing.T) {
	data := []domain.Course{
		seated("CSE110", 5),
		seated("ANT101", 20),
	}

	got := query.Sort(data, query.KeyAvailable, query.Descending)
	require.Equal(t, 20, got[0].Seats.Available)
	assert.Equal(t, 5, got[1].Seats.Available)

	// Tie on available falls back to code ascending.
	tie := query.Sort([]domain.Course{seated("MAT110", 5), seated("BIO101", 5)}, query.KeyAvailable, query.Descending)
	assert.Equal(t, "BIO101", tie[0].Code)
}

func TestSort_MissingSeatsCompareAsZero(t *testing.T) {
	data := []domain.Course{
		course("CSE110", "1", "A"), // no seats
		seated("ANT101", -2),
		seated("MAT110", 3),
	}

	got := query.Sort(data, query.KeyAvailable, query.Ascending)
	assert.Equal(t, "ANT101", got[0].Code) // -2
	assert.Equal(t, "CSE110", got[1].Code) // treated as 0
	assert.Equal(t, "MAT110", got[2].Code) // 3
}

func TestSort_StableAndRepeatable(t *testing.T) {
	data := []domain.Course{
		course("CSE110", "2", "B"),
		course("ANT101", "1", "A"),
		course("MAT110", "3", "C"),
	}

	once := query.Sort(data, query.KeyFaculty, query.Ascending)
	twice := query.Sort(once, query.KeyFaculty, query.Ascending)
	assert.Equal(t, once, twice)
}

func TestPaginate(t *testing.T) {
	data := []domain.Course{
		course("A", "1", ""), course("B", "1", ""), course("C", "1", ""),
		course("D", "1", ""), course("E", "1", ""),
	}

	t.Run("covers every record exactly once", func(t *testing.T) {
		total := 0
		for page := 1; page <= query.PageCount(len(data), 2); page++ {
			total += len(query.Paginate(data, 2, page))
		}
		assert.Equal(t, len(data), total)
	})

	t.Run("last page is short", func(t *testing.T) {
		got := query.Paginate(data, 2, 3)
		require.Len(t, got, 1)
		assert.Equal(t, "E", got[0].Code)
	})

	t.Run("out of range is empty", func(t *testing.T) {
		assert.Empty(t, query.Paginate(data, 2, 4))
		assert.Empty(t, query.Paginate(data, 2, 0))
	})
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 3, query.PageCount(5, 2))
	assert.Equal(t, 1, query.PageCount(2, 2))
	assert.Equal(t, 0, query.PageCount(0, 2))
}
