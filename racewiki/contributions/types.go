package contributions

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrContributionNotFound = errors.New("contribution not found")
	ErrInvalidStatus        = errors.New("invalid contribution status")
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	}

	return false
}

type Service struct {
	db *pgxpool.Pool
}

// a reader-submitted article waiting for review
type Contribution struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	ImageURL    *string   `json:"image_url,omitempty"`
	Content     string    `json:"content"`
	Locale      string    `json:"locale"`
	SubmittedBy *string   `json:"submitted_by,omitempty"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateRequest struct {
	Title       string  `json:"title" binding:"required,max=200"`
	Category    string  `json:"category" binding:"required,max=50"`
	ImageURL    *string `json:"image_url,omitempty" binding:"omitempty,max=2000"`
	Content     string  `json:"content" binding:"required,max=100000"`
	Locale      string  `json:"-"`
	SubmittedBy *string `json:"-"`
}

type UpdateStatusRequest struct {
	Status Status `json:"status" binding:"required"`
}
