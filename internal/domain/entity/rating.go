// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Rating value bounds. A rating is always a whole number of stars.
const (
	MinRatingValue = 1
	MaxRatingValue = 5
)

// NoRating is reported in place of an average when a store has no ratings.
// Zero would wrongly suggest a zero-star rating was received.
const NoRating = "N/A"

// Rating is a single user's 1-5 star rating of a store. The system holds at
// most one rating per (user, store) pair; resubmission overwrites the value.
type Rating struct {
	ID        uuid.UUID // The unique identifier for this rating record.
	Value     int       // The star value, between MinRatingValue and MaxRatingValue.
	UserID    uuid.UUID // The user who authored the rating.
	StoreID   uuid.UUID // The store the rating applies to.
	Rater     *User     // The authoring user, when loaded.
	CreatedAt time.Time // Timestamp of the first submission.
	UpdatedAt time.Time // Timestamp of the most recent (re)submission.
}

// ValidRatingValue reports whether v is within the allowed star range.
func ValidRatingValue(v int) bool {
	return v >= MinRatingValue && v <= MaxRatingValue
}

// AverageRating formats the mean of the given rating values to one decimal
// place, or returns NoRating for an empty set.
func AverageRating(values []int) string {
	if len(values) == 0 {
		return NoRating
	}

	sum := 0
	for _, v := range values {
		sum += v
	}

	return fmt.Sprintf("%.1f", float64(sum)/float64(len(values)))
}
