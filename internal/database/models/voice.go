package models

import (
	"time"

	"github.com/google/uuid"
)

// VoiceSample points at the enrolled voice recording of a voter in the blob store
type VoiceSample struct {
	BaseModel
	VoterID     uuid.UUID `json:"voter_id" gorm:"type:uuid;not null;uniqueIndex"`
	ObjectKey   string    `json:"object_key" gorm:"not null;size:300"`
	ContentType string    `json:"content_type" gorm:"size:100"`
	SizeBytes   int64     `json:"size_bytes"`
	Checksum    string    `json:"checksum" gorm:"size:64"`
}

// TableName returns the table name for VoiceSample
func (VoiceSample) TableName() string {
	return "voice_samples"
}

// VerificationAttempt records one voice verification call for rate limiting and audit
type VerificationAttempt struct {
	BaseModel
	VoterID     uuid.UUID `json:"voter_id" gorm:"type:uuid;not null;index:idx_verification_attempts_voter_time"`
	Success     bool      `json:"success" gorm:"not null"`
	Score       float64   `json:"score"`
	AttemptedAt time.Time `json:"attempted_at" gorm:"not null;index:idx_verification_attempts_voter_time"`
}

// TableName returns the table name for VerificationAttempt
func (VerificationAttempt) TableName() string {
	return "verification_attempts"
}
