package model

import (
	"time"
)

type Answer struct {
	ID         string    `json:"answerId"`
	QuestionID string    `json:"-"`
	Content    string    `json:"content"`
	UserID     string    `json:"userId"`
	Username   string    `json:"username"` // Populated by listing joins
	CreatedAt  time.Time `json:"createdAt"`
}
