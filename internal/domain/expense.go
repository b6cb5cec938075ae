package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Expense struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerID     uuid.UUID      `json:"ownerId" gorm:"type:uuid;index;not null"`
	Amount      float64        `json:"amount" gorm:"not null"`
	Category    string         `json:"category" gorm:"not null"`
	Description string         `json:"description"`
	Date        datatypes.Date `json:"date" gorm:"type:date;not null"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// DateString renders the expense date as YYYY-MM-DD for API responses.
func (e *Expense) DateString() string {
	return time.Time(e.Date).Format("2006-01-02")
}
