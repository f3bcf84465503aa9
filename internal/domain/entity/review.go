package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a user's rating of a product. A user may leave more than one
// review for the same product; no uniqueness is enforced.
type Review struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	UserID    uuid.UUID
	Rating    int // 1 through 5 inclusive.
	Comment   string
	CreatedAt time.Time
}

// RatingValid reports whether the rating is within the accepted 1..5 range.
func (r *Review) RatingValid() bool {
	return r.Rating >= 1 && r.Rating <= 5
}
