package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// One planned Meal with its nutrition snapshot.
type Meal struct {
	ID         string `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string `gorm:"not null" json:"name"`
	MealPlanID string `gorm:"type:uuid;not null;index" json:"meal_plan_id"`

	Calories int `gorm:"not null" json:"calories"`
	Carbs    int `gorm:"not null" json:"carbs"`
	Protein  int `gorm:"not null" json:"protein"`
	Fat      int `gorm:"not null" json:"fat"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *Meal) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
