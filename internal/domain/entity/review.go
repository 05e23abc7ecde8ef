package entity

import "time"

// Review is a star-rated text review. At most one review exists per
// (UserID, MovieID) pair; a second submission for the same movie becomes
// an update of the existing review.
//
// Username is a denormalized copy of Identity.DisplayName taken at
// creation time. It is deliberately not re-synced if the user later
// renames; reviews show the name at posting time.
type Review struct {
	ID       string `json:"id"` // Store-assigned on creation.
	MovieID  int64  `json:"movieId"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Rating   int    `json:"rating"` // Integer in [1,5].
	Comment  string `json:"comment"`

	CreatedAt time.Time `json:"createdAt"`
}
