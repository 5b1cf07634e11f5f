package domain

import "time"

type Note struct {
	ID          string
	Title       string
	Content     string
	AuthorID    string
	AuthorEmail string // populated on reads
	TenantID    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NoteSortField is a column notes can be ordered by.
type NoteSortField string

const (
	SortByCreatedAt NoteSortField = "createdAt"
	SortByUpdatedAt NoteSortField = "updatedAt"
	SortByTitle     NoteSortField = "title"
)

func (f NoteSortField) Valid() bool {
	switch f {
	case SortByCreatedAt, SortByUpdatedAt, SortByTitle:
		return true
	}
	return false
}

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

func (o SortOrder) Valid() bool {
	return o == SortAsc || o == SortDesc
}

// NoteFilter is a normalized list query, scoped to one tenant.
type NoteFilter struct {
	TenantID  string
	Search    string
	SortBy    NoteSortField
	SortOrder SortOrder
	Limit     int
	Offset    int
}

type Pagination struct {
	Page       int
	Limit      int
	Total      int
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

// NewPagination derives page counts for a result set of total rows.
func NewPagination(page, limit, total int) Pagination {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: pages,
		HasNext:    page < pages,
		HasPrev:    page > 1,
	}
}
