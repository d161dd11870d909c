package models

// Page is the standard pagination envelope returned by list endpoints.
type Page[T any] struct {
	Total int64 `json:"total"`
	Limit int64 `json:"limit"`
	Skip  int64 `json:"skip"`
	Data  []T   `json:"data"`
}
