package domain

import "time"

// Item is one occurrence of an attribute attached to a work. Entity may be
// nil when only free-text details are known. Items of one kind are kept in
// the order the repository returns them (ascending Order).
type Item[E any] struct {
	Entity  *E     `json:"entity,omitempty"`
	Details string `json:"details,omitempty"`
	Order   int    `json:"order"`
}

// Timespan is a date range; either bound may be unknown.
type Timespan struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}
