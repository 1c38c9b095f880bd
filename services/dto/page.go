package dto

// Page is one slice of an ordered result set.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// NewPage builds a page; TotalPages is ceil(total/size), and 0 when size is 0.
func NewPage[T any](content []T, page, size int, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}
	return Page[T]{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}

// Sort directions accepted by PageRequest.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// PageRequest carries 0-based paging and sorting parameters as supplied by the caller.
type PageRequest struct {
	Page          int    `form:"page"`
	Size          int    `form:"size"`
	SortBy        string `form:"sortBy"`
	SortDirection string `form:"sortDirection"`
}
