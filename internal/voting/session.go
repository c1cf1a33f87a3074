// Package voting holds the per-voter ballot state machine. It performs no I/O;
// services feed it selections and verification outcomes and persist the result.
package voting

import (
	"fmt"

	apperrors "voteverse-backend/internal/errors"

	"github.com/google/uuid"
)

// State is the stage of a voting session.
type State string

const (
	StateSelecting  State = "selecting"
	StateConfirming State = "confirming"
	StateVerifying  State = "verifying"
	StateSubmitted  State = "submitted"
)

// DefaultMaxAttempts is the voice verification ceiling.
const DefaultMaxAttempts = 3

// BallotCandidate is one choice offered for a position.
type BallotCandidate struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// BallotPosition is one office on the ballot with its candidates in ballot order.
type BallotPosition struct {
	ID         uuid.UUID         `json:"id"`
	Name       string            `json:"name"`
	Candidates []BallotCandidate `json:"candidates"`
}

// Ballot is the ordered list of positions a voter walks through.
type Ballot []BallotPosition

// Selection is the chosen candidate for one position.
type Selection struct {
	PositionID    uuid.UUID `json:"position_id"`
	PositionName  string    `json:"position_name"`
	CandidateID   uuid.UUID `json:"candidate_id"`
	CandidateName string    `json:"candidate_name"`
}

// Snapshot is a read-only view of a session.
type Snapshot struct {
	VoterID           uuid.UUID       `json:"voter_id"`
	State             State           `json:"state"`
	PositionIndex     int             `json:"position_index"`
	PositionCount     int             `json:"position_count"`
	CurrentPosition   *BallotPosition `json:"current_position,omitempty"`
	Selections        []Selection     `json:"selections"`
	AttemptsUsed      int             `json:"attempts_used"`
	AttemptsRemaining int             `json:"attempts_remaining"`
}

// Session walks one voter through selecting, confirming, verifying and
// submitting a ballot. Invalid transitions return ErrInvalidTransition and
// leave the session unchanged. Session is not safe for concurrent use; Store
// serializes access.
type Session struct {
	voterID     uuid.UUID
	ballot      Ballot
	state       State
	index       int
	selections  []*BallotCandidate
	attempts    int
	maxAttempts int
}

// NewSession starts a session at the first position. failedAttempts seeds the
// verification counter from persisted history.
func NewSession(voterID uuid.UUID, ballot Ballot, maxAttempts, failedAttempts int) (*Session, error) {
	if len(ballot) == 0 {
		return nil, apperrors.ErrEmptyBallot
	}
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}
	if failedAttempts < 0 {
		failedAttempts = 0
	}
	if failedAttempts > maxAttempts {
		failedAttempts = maxAttempts
	}
	return &Session{
		voterID:     voterID,
		ballot:      ballot,
		state:       StateSelecting,
		selections:  make([]*BallotCandidate, len(ballot)),
		attempts:    failedAttempts,
		maxAttempts: maxAttempts,
	}, nil
}

func (s *Session) VoterID() uuid.UUID { return s.voterID }
func (s *Session) State() State       { return s.state }
func (s *Session) Index() int         { return s.index }
func (s *Session) Ballot() Ballot     { return s.ballot }

// CurrentPosition returns the position being voted on, or nil outside selecting.
func (s *Session) CurrentPosition() *BallotPosition {
	if s.state != StateSelecting {
		return nil
	}
	return &s.ballot[s.index]
}

// AttemptsRemaining is the number of verification tries left.
func (s *Session) AttemptsRemaining() int {
	return s.maxAttempts - s.attempts
}

// Exhausted reports whether the verification ceiling has been reached.
func (s *Session) Exhausted() bool {
	return s.attempts >= s.maxAttempts
}

// Select records the candidate at index for the current position, replacing
// any earlier choice.
func (s *Session) Select(candidateIndex int) error {
	if s.state != StateSelecting {
		return s.invalid("select")
	}
	candidates := s.ballot[s.index].Candidates
	if candidateIndex < 0 || candidateIndex >= len(candidates) {
		return apperrors.ErrCandidateIndexOutOfRange
	}
	s.selections[s.index] = &candidates[candidateIndex]
	return nil
}

// SelectCandidate selects by candidate id on the current position.
func (s *Session) SelectCandidate(candidateID uuid.UUID) error {
	if s.state != StateSelecting {
		return s.invalid("select")
	}
	for i, c := range s.ballot[s.index].Candidates {
		if c.ID == candidateID {
			return s.Select(i)
		}
	}
	return apperrors.ErrCandidateNotOnBallot
}

// Selected returns the choice for the current position, if any.
func (s *Session) Selected() *BallotCandidate {
	if s.state != StateSelecting {
		return nil
	}
	return s.selections[s.index]
}

// Next advances to the following position, or to confirming after the last one.
func (s *Session) Next() error {
	if s.state != StateSelecting {
		return s.invalid("next")
	}
	if s.selections[s.index] == nil {
		return apperrors.ErrSelectionRequired
	}
	if s.index == len(s.ballot)-1 {
		s.state = StateConfirming
		return nil
	}
	s.index++
	return nil
}

// Previous moves back one position. It is a no-op on the first position.
func (s *Session) Previous() error {
	if s.state != StateSelecting {
		return s.invalid("previous")
	}
	if s.index > 0 {
		s.index--
	}
	return nil
}

// VoiceSelect selects and advances in one step.
func (s *Session) VoiceSelect(candidateIndex int) error {
	if err := s.Select(candidateIndex); err != nil {
		return err
	}
	return s.Next()
}

// Confirm answers the review question. No discards every selection.
func (s *Session) Confirm(yes bool) error {
	if s.state != StateConfirming {
		return s.invalid("confirm")
	}
	if !yes {
		s.Reset()
		return nil
	}
	if s.Exhausted() {
		s.Reset()
		return apperrors.ErrVerificationExhausted
	}
	s.state = StateVerifying
	return nil
}

// RecordVerification applies the outcome of one voice check. The failure that
// reaches the ceiling resets the ballot and returns ErrVerificationExhausted.
func (s *Session) RecordVerification(success bool) error {
	if s.state != StateVerifying {
		return s.invalid("verify")
	}
	if success {
		s.state = StateSubmitted
		return nil
	}
	if s.attempts < s.maxAttempts {
		s.attempts++
	}
	if s.Exhausted() {
		s.Reset()
		return apperrors.ErrVerificationExhausted
	}
	return nil
}

// MarkExhausted records that the ceiling was reached elsewhere, for example
// from persisted attempts, and resets the ballot.
func (s *Session) MarkExhausted() {
	s.attempts = s.maxAttempts
	s.Reset()
}

// Finish hands back the verified selections in ballot order and clears the
// session for reuse.
func (s *Session) Finish() ([]Selection, error) {
	if s.state != StateSubmitted {
		return nil, s.invalid("finish")
	}
	selections := s.Selections()
	s.Reset()
	return selections, nil
}

// Reset returns to the first position with no selections. The attempt counter is kept.
func (s *Session) Reset() {
	s.state = StateSelecting
	s.index = 0
	for i := range s.selections {
		s.selections[i] = nil
	}
}

// Selections lists the choices made so far in ballot order.
func (s *Session) Selections() []Selection {
	out := make([]Selection, 0, len(s.ballot))
	for i, c := range s.selections {
		if c == nil {
			continue
		}
		out = append(out, Selection{
			PositionID:    s.ballot[i].ID,
			PositionName:  s.ballot[i].Name,
			CandidateID:   c.ID,
			CandidateName: c.Name,
		})
	}
	return out
}

// Snapshot copies the session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		VoterID:           s.voterID,
		State:             s.state,
		PositionIndex:     s.index,
		PositionCount:     len(s.ballot),
		Selections:        s.Selections(),
		AttemptsUsed:      s.attempts,
		AttemptsRemaining: s.AttemptsRemaining(),
	}
	if pos := s.CurrentPosition(); pos != nil {
		copied := *pos
		copied.Candidates = append([]BallotCandidate(nil), pos.Candidates...)
		snap.CurrentPosition = &copied
	}
	return snap
}

func (s *Session) invalid(op string) error {
	return fmt.Errorf("%w: %s while %s", apperrors.ErrInvalidTransition, op, s.state)
}
