package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type BaseModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CreatedAt int64          `gorm:"autoCreateTime"`
	UpdatedAt int64          `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	now := time.Now().Unix()
	b.CreatedAt = now
	b.UpdatedAt = now
	return nil
}

func (b *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	b.UpdatedAt = time.Now().Unix()
	return nil
}

// Trip is a saved, already-validated itinerary. Plan holds the full TripPlan
// document as produced by the planner; the flattened columns exist for
// listing and budget queries without unmarshalling the document.
type Trip struct {
	BaseModel
	UserID         string `gorm:"index"`
	Destination    string
	Source         string
	StartDate      string
	EndDate        string
	Currency       string
	CurrencySymbol string
	TotalBudget    string
	BudgetAmount   float64
	PackingList    pq.StringArray `gorm:"type:text[]"`
	Plan           string         `gorm:"type:jsonb"`

	Expenses []Expense
}

type Expense struct {
	BaseModel
	TripID   uuid.UUID `gorm:"type:uuid;index"`
	Category string
	Note     string
	Amount   float64
}
