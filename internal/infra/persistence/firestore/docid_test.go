package firestore

import "testing"

func TestEntryDocID(t *testing.T) {
	tests := []struct {
		userID  string
		movieID int64
		want    string
	}{
		{userID: "alice", movieID: 42, want: "alice_42"},
		{userID: "u-1", movieID: 0, want: "u-1_0"},
		{userID: "bob", movieID: 603692, want: "bob_603692"},
	}

	for _, tt := range tests {
		if got := EntryDocID(tt.userID, tt.movieID); got != tt.want {
			t.Fatalf("EntryDocID(%q, %d) = %q, want %q", tt.userID, tt.movieID, got, tt.want)
		}
	}
}
