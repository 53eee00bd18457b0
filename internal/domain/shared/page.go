package shared

// DefaultLimit is the page size used when the caller does not supply one.
const DefaultLimit = 10

// PageParams carries the limit/offset window for a list query.
// Limit has no upper bound; a caller asking for a huge page pays the cost.
type PageParams struct {
	Limit  int
	Offset int
}

// DefaultPageParams returns the window used when no parameters are supplied.
func DefaultPageParams() PageParams {
	return PageParams{Limit: DefaultLimit, Offset: 0}
}

// Normalize clamps Limit to at least 1. Offset is deliberately left
// untouched beyond its parse-time zero fallback.
func (p PageParams) Normalize() PageParams {
	if p.Limit < 1 {
		p.Limit = 1
	}
	return p
}

// Page is the uniform pagination envelope returned by every list endpoint.
// Total is the count of all rows matching the same filter with the window
// removed; Content holds the [Offset, Offset+Limit) slice of those rows.
type Page[T any] struct {
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	Total   int64 `json:"total"`
	HasNext bool  `json:"hasNext"`
	Content []T   `json:"content"`
}

// NewPage builds a Page, deriving HasNext from the window and total.
func NewPage[T any](content []T, total int64, params PageParams) Page[T] {
	if content == nil {
		content = []T{}
	}
	return Page[T]{
		Limit:   params.Limit,
		Offset:  params.Offset,
		Total:   total,
		HasNext: int64(params.Offset)+int64(params.Limit) < total,
		Content: content,
	}
}
