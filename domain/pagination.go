package domain

const (
	defaultPageLimit = 100
	maxPageLimit     = 1000
)

// Page is an offset/limit window normalized at the boundary.
type Page struct {
	Offset int64
	Limit  int64
}

// NewPage clamps raw pagination values to sane bounds.
func NewPage(offset, limit int64) Page {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return Page{Offset: offset, Limit: limit}
}
