package models

import (
	"time"

	"github.com/google/uuid"
)

// Candidate is a voter standing for one position
type Candidate struct {
	BaseModel
	VoterID          uuid.UUID  `json:"voter_id" gorm:"type:uuid;not null;uniqueIndex:idx_candidates_voter_position" validate:"required"`
	PositionID       uuid.UUID  `json:"position_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_candidates_voter_position" validate:"required"`
	Manifesto        string     `json:"manifesto" gorm:"type:text"`
	CampaignVideoURL string     `json:"campaign_video_url" gorm:"size:500" validate:"omitempty,url,max=500"`
	ImageKey         string     `json:"image_key,omitempty" gorm:"size:300"`
	IsApproved       bool       `json:"is_approved" gorm:"not null;default:false"`
	IsActive         bool       `json:"is_active" gorm:"not null;default:true"`
	ApprovedAt       *time.Time `json:"approved_at,omitempty"`
	VoteCount        int64      `json:"vote_count" gorm:"not null;default:0"`
	BallotOrder      int        `json:"ballot_order" gorm:"not null;default:0"`

	Voter    *Voter    `json:"voter,omitempty" gorm:"foreignKey:VoterID"`
	Position *Position `json:"position,omitempty" gorm:"foreignKey:PositionID"`
}

// OnBallot reports whether the candidate may receive votes
func (c Candidate) OnBallot() bool {
	return c.IsApproved && c.IsActive
}

// TableName returns the table name for Candidate
func (Candidate) TableName() string {
	return "candidates"
}
