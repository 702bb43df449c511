package types

// ErrorBody is the standard error payload: a human-readable message plus
// optional machine-consumable details.
type ErrorBody struct {
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ListPage is the standard shape for paginated collections.
type ListPage[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}
