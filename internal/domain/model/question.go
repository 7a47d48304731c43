package model

import (
	"time"
)

type Question struct {
	ID          string    `json:"question_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	UserID      string    `json:"user_id,omitempty"`
	Username    string    `json:"username,omitempty"` // Populated by listing joins
	CreatedAt   time.Time `json:"created_at"`
}
