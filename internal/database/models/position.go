package models

import "github.com/google/uuid"

// Position is an electable office within an election
type Position struct {
	BaseModel
	ElectionID  uuid.UUID     `json:"election_id" gorm:"type:uuid;not null;uniqueIndex:idx_positions_election_name" validate:"required"`
	Name        string        `json:"name" gorm:"not null;size:100;uniqueIndex:idx_positions_election_name" validate:"required,min=1,max=100"`
	Description string        `json:"description" gorm:"size:500" validate:"max=500"`
	Level       PositionLevel `json:"level" gorm:"type:varchar(20);not null;default:'UNIVERSITY'"`
	College     string        `json:"college,omitempty" gorm:"size:100"`
	DormBlock   string        `json:"dorm_block,omitempty" gorm:"size:50"`
	BallotOrder int           `json:"ballot_order" gorm:"not null;default:0"`

	Candidates []Candidate `json:"candidates,omitempty" gorm:"foreignKey:PositionID"`
}

// TableName returns the table name for Position
func (Position) TableName() string {
	return "positions"
}
