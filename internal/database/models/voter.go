package models

// Voter is a student eligible to vote. Records are synced from the university
// registry; reg_no is the registry key.
type Voter struct {
	BaseModel
	RegNo         string       `json:"reg_no" gorm:"uniqueIndex;not null;size:40" validate:"required,min=3,max=40"`
	FirstName     string       `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName      string       `json:"last_name" gorm:"not null;size:100" validate:"required,max=100"`
	Email         string       `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Phone         string       `json:"phone" gorm:"size:20" validate:"max=20"`
	College       string       `json:"college" gorm:"size:100;index" validate:"max=100"`
	Programme     string       `json:"programme" gorm:"size:150" validate:"max=150"`
	YearOfStudy   int          `json:"year_of_study" validate:"min=0,max=10"`
	DormBlock     string       `json:"dorm_block" gorm:"size:50" validate:"max=50"`
	ImageURL      string       `json:"image_url" gorm:"size:500" validate:"max=500"`
	Role          Role         `json:"role" gorm:"type:varchar(20);not null;default:'voter'"`
	VotingStatus  VotingStatus `json:"voting_status" gorm:"type:varchar(20);not null;default:'Not Voted'"`
	VoiceVerified bool         `json:"voice_verified" gorm:"not null;default:false"`
}

// FullName joins first and last name the way ballots announce candidates
func (v Voter) FullName() string {
	return v.FirstName + " " + v.LastName
}

// TableName returns the table name for Voter
func (Voter) TableName() string {
	return "voters"
}
