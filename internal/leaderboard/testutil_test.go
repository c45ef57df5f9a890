package leaderboard

import (
	"fmt"

	"stepboard/internal/directory"
)

// users builds records named user1..userN carrying the given scores.
func users(scores ...int) []UserRecord {
	out := make([]UserRecord, len(scores))
	for i, s := range scores {
		n := i + 1
		out[i] = UserRecord{
			ID:        fmt.Sprintf("id-%02d", n),
			FirstName: fmt.Sprintf("User%d", n),
			LastName:  fmt.Sprintf("Last%d", n),
			Score:     s,
			AvatarURL: "https://example.com/t.jpg",
		}
	}
	return out
}

func payload(id, first, last string) directory.Payload {
	var p directory.Payload
	p.Login.UUID = id
	p.Name.First = first
	p.Name.Last = last
	p.Picture.Thumbnail = "https://example.com/" + first + ".jpg"
	return p
}

func ids(rs []RankedUser) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.ID
	}
	return out
}
