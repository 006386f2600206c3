package query

import (
	"go.trai.ch/zerr"

	"github.com/itzMRZ/usisportal/internal/core/domain"
)

// Session is the query context over the active semester's dataset:
// current filter text, sort order and page. It replaces hidden module
// state; the caller owns it and passes results on, nothing renders here.
// A Session is not safe for concurrent use.
type Session struct {
	pageSize int

	baseline []domain.Course
	filtered []domain.Course

	filterText string
	sortKey    string
	sortDir    Direction
	page       int
}

// NewSession creates an empty query session with the given page size.
func NewSession(pageSize int) *Session {
	return &Session{
		pageSize: pageSize,
		page:     1,
	}
}

// SetDataset replaces the active dataset and resets filter, sort and
// page. The input is copied; later mutations by the caller are not seen.
func (s *Session) SetDataset(courses []domain.Course) {
	s.baseline = make([]domain.Course, len(courses))
	copy(s.baseline, courses)

	s.filterText = ""
	s.sortKey = ""
	s.page = 1
	s.refresh()
}

// Filter narrows the active dataset to courses matching text and resets
// to the first page. The current sort order is re-applied.
func (s *Session) Filter(text string) {
	s.filterText = text
	s.page = 1
	s.refresh()
}

// Sort orders the filtered dataset by key and direction. The page is
// kept; sorting changes order, not membership.
func (s *Session) Sort(key string, dir Direction) {
	s.sortKey = key
	s.sortDir = dir
	s.refresh()
}

func (s *Session) refresh() {
	s.filtered = Filter(s.baseline, s.filterText)
	if s.sortKey != "" {
		s.filtered = Sort(s.filtered, s.sortKey, s.sortDir)
	}
}

// CurrentPage returns the courses of the current page.
func (s *Session) CurrentPage() []domain.Course {
	return Paginate(s.filtered, s.pageSize, s.page)
}

// Filtered returns the whole filtered dataset in its current order.
func (s *Session) Filtered() []domain.Course {
	out := make([]domain.Course, len(s.filtered))
	copy(out, s.filtered)
	return out
}

// Info returns the pagination position for the current filter.
func (s *Session) Info() Info {
	total := PageCount(len(s.filtered), s.pageSize)
	return Info{
		Page:       s.page,
		TotalPages: total,
		HasNext:    s.page < total,
		HasPrev:    s.page > 1,
	}
}

// NextPage advances one page, reporting whether the page changed.
func (s *Session) NextPage() bool {
	if s.page < PageCount(len(s.filtered), s.pageSize) {
		s.page++
		return true
	}
	return false
}

// PrevPage steps back one page, reporting whether the page changed.
func (s *Session) PrevPage() bool {
	if s.page > 1 {
		s.page--
		return true
	}
	return false
}

// SetPage jumps to the given 1-indexed page.
func (s *Session) SetPage(page int) error {
	total := PageCount(len(s.filtered), s.pageSize)
	if page < 1 || (total > 0 && page > total) || (total == 0 && page != 1) {
		pageErr := zerr.With(domain.ErrPageOutOfRange, "page", page)
		return zerr.With(pageErr, "total_pages", total)
	}
	s.page = page
	return nil
}
