package domain

import (
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var (
	collatorMu sync.Mutex
	collator   = collate.New(language.English, collate.Loose)
)

// Collate compares two strings with locale-aware ordering, the order the
// portal UI always used for course codes. A collate.Collator is not safe
// for concurrent use, so access is serialized.
func Collate(a, b string) int {
	collatorMu.Lock()
	defer collatorMu.Unlock()
	return collator.CompareString(a, b)
}
