package models

// Role defines what a voter account may do
type Role string

const (
	RoleVoter Role = "voter"
	RoleAdmin Role = "admin"
)

// VotingStatus tracks whether a voter has submitted a ballot
type VotingStatus string

const (
	VotingStatusNotVoted VotingStatus = "Not Voted"
	VotingStatusVoted    VotingStatus = "Voted"
)

// PositionLevel defines the constituency a position is elected by
type PositionLevel string

const (
	PositionLevelUniversity PositionLevel = "UNIVERSITY"
	PositionLevelCollege    PositionLevel = "COLLEGE"
	PositionLevelBlock      PositionLevel = "BLOCK"
)

// ElectionStatus defines the lifecycle of an election
type ElectionStatus string

const (
	ElectionStatusDraft     ElectionStatus = "draft"
	ElectionStatusActive    ElectionStatus = "active"
	ElectionStatusCompleted ElectionStatus = "completed"
)

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleVoter, RoleAdmin:
		return true
	}
	return false
}

// IsValid checks if the VotingStatus is valid
func (s VotingStatus) IsValid() bool {
	switch s {
	case VotingStatusNotVoted, VotingStatusVoted:
		return true
	}
	return false
}

// IsValid checks if the PositionLevel is valid
func (l PositionLevel) IsValid() bool {
	switch l {
	case PositionLevelUniversity, PositionLevelCollege, PositionLevelBlock:
		return true
	}
	return false
}

// IsValid checks if the ElectionStatus is valid
func (s ElectionStatus) IsValid() bool {
	switch s {
	case ElectionStatusDraft, ElectionStatusActive, ElectionStatusCompleted:
		return true
	}
	return false
}

// CanTransitionTo reports whether an election may move from s to next.
// Elections only move forward: draft -> active -> completed.
func (s ElectionStatus) CanTransitionTo(next ElectionStatus) bool {
	switch s {
	case ElectionStatusDraft:
		return next == ElectionStatusActive
	case ElectionStatusActive:
		return next == ElectionStatusCompleted
	}
	return false
}
