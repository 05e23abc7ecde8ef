package entity

import "time"

// MovieSummary is an immutable snapshot of a movie copied from the
// metadata API at the time the user interacted with it. List entries
// store the copy, not a live reference; it does not follow later
// changes to the source metadata.
type MovieSummary struct {
	ID          int64   `json:"id"`          // Provider-assigned, stable.
	Title       string  `json:"title"`
	PosterPath  string  `json:"posterPath"`  // Relative path, may be empty.
	VoteAverage float64 `json:"voteAverage"` // In [0,10].
	ReleaseDate string  `json:"releaseDate"` // ISO-8601 date, may be empty.
}

// MovieListEntry is a favorites or watchlist membership record, keyed by
// (UserID, Movie.ID). At most one entry exists per pair per collection.
type MovieListEntry struct {
	UserID  string       `json:"userId"`
	Movie   MovieSummary `json:"movie"`
	AddedAt time.Time    `json:"addedAt"` // Server-assigned on insert.
}

// CastMember is a single credited actor on a movie detail page.
type CastMember struct {
	Name      string `json:"name"`
	Character string `json:"character"`
	Profile   string `json:"profilePath"`
}

// Genre is a metadata API genre tag.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// MovieDetails extends MovieSummary with the fields the detail screen shows.
type MovieDetails struct {
	MovieSummary
	Overview string       `json:"overview"`
	Runtime  int          `json:"runtime"`
	Genres   []Genre      `json:"genres"`
	Cast     []CastMember `json:"cast"`
}
