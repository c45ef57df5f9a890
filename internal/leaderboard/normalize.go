package leaderboard

import (
	"stepboard/internal/directory"
	"stepboard/internal/logging"
	"stepboard/internal/random"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var validate = validator.New()

// Normalizer maps directory payloads to UserRecords.
type Normalizer struct {
	scores random.ScoreSource
}

// NewNormalizer creates a Normalizer drawing scores from src.
func NewNormalizer(src random.ScoreSource) *Normalizer {
	return &Normalizer{scores: src}
}

// Normalize produces one UserRecord per payload, drawing a fresh score for
// each. Results are not reproducible across calls unless the score source is.
// Missing optional fields never fail the batch.
func (n *Normalizer) Normalize(payloads []directory.Payload) []UserRecord {
	log := logging.Get(logging.CategoryLeaderboard)

	out := make([]UserRecord, 0, len(payloads))
	for _, p := range payloads {
		u := UserRecord{
			ID:          p.Login.UUID,
			FirstName:   p.Name.First,
			LastName:    p.Name.Last,
			Score:       n.scores.Score(),
			Email:       p.Email,
			Phone:       p.Phone,
			Country:     p.Location.Country,
			DateOfBirth: p.Dob.Date,
			Age:         p.Dob.Age,
			AvatarURL:   p.Picture.Thumbnail,
			Gender:      p.Gender,
			JoinedDate:  p.Registered.Date,
		}
		if u.ID == "" {
			u.ID = uuid.NewString()
		}
		if u.Gender == "" {
			u.Gender = UnspecifiedGender
		}
		if u.JoinedDate == "" {
			u.JoinedDate = FallbackJoinedDate
		}
		if err := validate.Struct(u); err != nil {
			log.Warn("user payload missing required fields", zap.String("id", u.ID), zap.Error(err))
		}
		out = append(out, u)
	}

	log.Debug("normalized users", zap.Int("count", len(out)))
	return out
}
