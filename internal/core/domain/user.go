package domain

import "time"

// User models an account in the studio. Email doubles as the login name and
// is unique across all users. PasswordHash never crosses the trust boundary:
// it is excluded from every JSON rendering of the user.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	PasswordHash string    `json:"-"`
	Admin        bool      `json:"admin"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
