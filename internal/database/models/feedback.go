package models

import "github.com/google/uuid"

// Feedback is a voter's comment on the election process
type Feedback struct {
	BaseModel
	VoterID     uuid.UUID `json:"voter_id" gorm:"type:uuid;not null;index"`
	Comment     string    `json:"comment" gorm:"type:text;not null"`
	Rating      int       `json:"rating" gorm:"not null;index"`
	IsAnonymous bool      `json:"is_anonymous" gorm:"not null;default:false"`

	Voter *Voter `json:"voter,omitempty" gorm:"foreignKey:VoterID"`
}

// TableName returns the table name for Feedback
func (Feedback) TableName() string {
	return "feedback"
}
