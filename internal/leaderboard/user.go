// Package leaderboard turns directory payloads into a ranked, sortable and
// searchable collection. Everything here is pure and synchronous except the
// score draw in Normalize.
package leaderboard

// FallbackJoinedDate is used when the directory omits a registration date.
const FallbackJoinedDate = "2023-01-01"

// UnspecifiedGender is shown when the directory omits gender.
const UnspecifiedGender = "Not specified"

// UserRecord is the normalized user shape. Optional upstream fields are
// already resolved to their defaults.
type UserRecord struct {
	ID          string `json:"id" validate:"required"`
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Score       int    `json:"score" validate:"gte=0"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Country     string `json:"country"`
	DateOfBirth string `json:"dateOfBirth"`
	Age         int    `json:"age"`
	AvatarURL   string `json:"avatarUrl" validate:"required"`
	Gender      string `json:"gender"`
	JoinedDate  string `json:"joinedDate"`
}

// FullName joins first and last name.
func (u UserRecord) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// RankedUser is a UserRecord annotated with its leaderboard position.
type RankedUser struct {
	UserRecord
	Rank        int    `json:"rank"`
	RankHistory [4]int `json:"rankHistory"`
}

// ProfileRoute is the payload carried to the profile detail destination.
// The decorative rank history is deliberately not part of it.
type ProfileRoute struct {
	User UserRecord `json:"user"`
	Rank int        `json:"rank"`
}

// Route builds the navigation payload for u.
func (u RankedUser) Route() ProfileRoute {
	return ProfileRoute{User: u.UserRecord, Rank: u.Rank}
}
