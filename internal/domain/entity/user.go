package entity

import (
	"time"
)

// User is the aggregate root for the user domain.
// Rating and TotalReviews are derived values owned by the review write path:
// rating is the mean of all ratings received as a seller, rounded to one decimal.
//
// Passwords are stored as bcrypt hashes in PasswordHash; handlers must never
// serialize the record directly (see Public).
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"password_hash,omitempty"`
	Rating       float64   `json:"rating"`
	TotalReviews int       `json:"total_reviews"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PublicUser is the client-facing projection of a User.
type PublicUser struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Rating       float64   `json:"rating"`
	TotalReviews int       `json:"total_reviews"`
	CreatedAt    time.Time `json:"created_at"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		Rating:       u.Rating,
		TotalReviews: u.TotalReviews,
		CreatedAt:    u.CreatedAt,
	}
}
