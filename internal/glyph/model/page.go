package model

// Page bounds a find query. Sort lists field names, "-" prefix for descending.
type Page struct {
	Limit  int64
	Offset int64
	Sort   []string
}
