package models

import "time"

// Election groups the positions voted on together
type Election struct {
	BaseModel
	Name        string         `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	Description string         `json:"description" gorm:"size:500" validate:"max=500"`
	Status      ElectionStatus `json:"status" gorm:"type:varchar(20);not null;default:'draft'"`
	StartsAt    *time.Time     `json:"starts_at,omitempty"`
	EndsAt      *time.Time     `json:"ends_at,omitempty"`

	Positions []Position `json:"positions,omitempty" gorm:"foreignKey:ElectionID"`
}

// TableName returns the table name for Election
func (Election) TableName() string {
	return "elections"
}
