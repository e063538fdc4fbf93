package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// sessionRequest is the body for creating or updating a session. Field bounds
// mirror the stored schema: short name, free-form description.
type sessionRequest struct {
	Name        string    `json:"name"        validate:"required,max=50"`
	Date        time.Time `json:"date"        validate:"required"`
	TeacherID   string    `json:"teacher_id"  validate:"required"`
	Description string    `json:"description" validate:"required,max=2500"`
	Users       []string  `json:"users"`
}
