package domain

import "time"

// Session is a scheduled class. UserIDs holds the participants; a user may
// appear at most once.
type Session struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	TeacherID   string    `json:"teacher_id"`
	UserIDs     []string  `json:"users"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Participates reports whether the given user is enrolled in the session.
func (s *Session) Participates(userID string) bool {
	for _, id := range s.UserIDs {
		if id == userID {
			return true
		}
	}
	return false
}
