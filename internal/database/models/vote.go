package models

import (
	"time"

	"github.com/google/uuid"
)

// Vote is one voter's choice of candidate for one position.
// The (voter_id, position_id) unique index enforces one vote per position.
type Vote struct {
	BaseModel
	VoterID     uuid.UUID `json:"voter_id" gorm:"type:uuid;not null;uniqueIndex:idx_votes_voter_position"`
	PositionID  uuid.UUID `json:"position_id" gorm:"type:uuid;not null;uniqueIndex:idx_votes_voter_position;index"`
	CandidateID uuid.UUID `json:"candidate_id" gorm:"type:uuid;not null;index"`
	IPAddress   string    `json:"ip_address,omitempty" gorm:"size:64"`
	DeviceInfo  string    `json:"device_info,omitempty" gorm:"size:300"`
	VoteHash    string    `json:"vote_hash" gorm:"uniqueIndex;not null;size:64"`
	CastAt      time.Time `json:"cast_at" gorm:"not null"`

	Position  *Position  `json:"position,omitempty" gorm:"foreignKey:PositionID"`
	Candidate *Candidate `json:"candidate,omitempty" gorm:"foreignKey:CandidateID"`
}

// TableName returns the table name for Vote
func (Vote) TableName() string {
	return "votes"
}
