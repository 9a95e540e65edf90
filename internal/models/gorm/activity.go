package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Activity is one logged practice session. History is immutable except
// through the owner (or a management member acting for them).
type Activity struct {
	ID        string    `gorm:"column:id;primaryKey;type:uuid"`
	UserID    string    `gorm:"column:user_id;type:uuid;index"`
	Date      time.Time `gorm:"column:date;index"`
	Period    float64   `gorm:"column:period"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	User User `gorm:"foreignKey:UserID"`
}

// TableName specifies the table name for GORM
func (Activity) TableName() string {
	return "activities"
}

func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
