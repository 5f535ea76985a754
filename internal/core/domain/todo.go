package domain

import (
	"time"

	"github.com/google/uuid"
)

type Todo struct {
	ID          int
	UUID        uuid.UUID
	Title       string `validate:"required,max=100"`
	Description string `validate:"max=500"`
	DueDate     *time.Time
	Completed   bool
	UserId      int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (t *Todo) BelongsToUser(userID int) bool {
	return t.UserId == userID
}

func (t *Todo) HasDueDate() bool {
	return t.DueDate != nil
}
