package domain

import "time"

// Teacher is a yoga teacher that sessions are assigned to. Teachers are
// reference data: the API only reads them.
type Teacher struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
