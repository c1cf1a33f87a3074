package voting

import (
	"errors"
	"sync"
	"testing"

	apperrors "voteverse-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func testBallot() Ballot {
	return Ballot{
		{
			ID:   uuid.New(),
			Name: "University President",
			Candidates: []BallotCandidate{
				{ID: uuid.New(), Name: "Amina Njoroge"},
				{ID: uuid.New(), Name: "Brian Otieno"},
			},
		},
		{
			ID:   uuid.New(),
			Name: "Sports Secretary",
			Candidates: []BallotCandidate{
				{ID: uuid.New(), Name: "Chege Mwangi"},
				{ID: uuid.New(), Name: "Dora Achieng"},
				{ID: uuid.New(), Name: "Esther Wanjiru"},
			},
		},
	}
}

type SessionTestSuite struct {
	suite.Suite
	ballot  Ballot
	session *Session
}

func (s *SessionTestSuite) SetupTest() {
	s.ballot = testBallot()
	session, err := NewSession(uuid.New(), s.ballot, DefaultMaxAttempts, 0)
	s.Require().NoError(err)
	s.session = session
}

// toVerifying selects the first candidate everywhere and confirms.
func (s *SessionTestSuite) toVerifying() {
	for range s.ballot {
		s.Require().NoError(s.session.VoiceSelect(0))
	}
	s.Require().Equal(StateConfirming, s.session.State())
	s.Require().NoError(s.session.Confirm(true))
	s.Require().Equal(StateVerifying, s.session.State())
}

func (s *SessionTestSuite) TestNewSessionRejectsEmptyBallot() {
	_, err := NewSession(uuid.New(), nil, 3, 0)
	s.ErrorIs(err, apperrors.ErrEmptyBallot)
}

func (s *SessionTestSuite) TestNewSessionClampsSeededAttempts() {
	session, err := NewSession(uuid.New(), s.ballot, 3, 7)
	s.Require().NoError(err)
	s.Equal(0, session.AttemptsRemaining())
	s.True(session.Exhausted())
}

func (s *SessionTestSuite) TestNextRequiresSelection() {
	err := s.session.Next()
	s.ErrorIs(err, apperrors.ErrSelectionRequired)
	s.Equal(StateSelecting, s.session.State())
	s.Equal(0, s.session.Index())
}

func (s *SessionTestSuite) TestSelectReplacesEarlierChoice() {
	s.Require().NoError(s.session.Select(0))
	s.Require().NoError(s.session.Select(1))
	s.Equal(s.ballot[0].Candidates[1].ID, s.session.Selected().ID)
	s.Len(s.session.Selections(), 1)
}

func (s *SessionTestSuite) TestSelectOutOfRange() {
	s.ErrorIs(s.session.Select(2), apperrors.ErrCandidateIndexOutOfRange)
	s.ErrorIs(s.session.Select(-1), apperrors.ErrCandidateIndexOutOfRange)
	s.Nil(s.session.Selected())
}

func (s *SessionTestSuite) TestSelectCandidateByID() {
	s.Require().NoError(s.session.SelectCandidate(s.ballot[0].Candidates[1].ID))
	s.Equal("Brian Otieno", s.session.Selected().Name)

	err := s.session.SelectCandidate(s.ballot[1].Candidates[0].ID)
	s.ErrorIs(err, apperrors.ErrCandidateNotOnBallot)
}

func (s *SessionTestSuite) TestPreviousIsNoOpAtStart() {
	s.NoError(s.session.Previous())
	s.Equal(0, s.session.Index())

	s.Require().NoError(s.session.VoiceSelect(1))
	s.Equal(1, s.session.Index())
	s.NoError(s.session.Previous())
	s.Equal(0, s.session.Index())
	s.Equal(s.ballot[0].Candidates[1].ID, s.session.Selected().ID, "going back keeps the earlier choice")
}

func (s *SessionTestSuite) TestConfirmingNeedsEverySelection() {
	s.Require().NoError(s.session.VoiceSelect(0))
	s.ErrorIs(s.session.Next(), apperrors.ErrSelectionRequired)
	s.Equal(StateSelecting, s.session.State())

	s.Require().NoError(s.session.VoiceSelect(2))
	s.Equal(StateConfirming, s.session.State())
	s.Len(s.session.Selections(), len(s.ballot))
}

func (s *SessionTestSuite) TestConfirmNoResetsEverything() {
	s.Require().NoError(s.session.VoiceSelect(1))
	s.Require().NoError(s.session.VoiceSelect(1))

	s.Require().NoError(s.session.Confirm(false))
	s.Equal(StateSelecting, s.session.State())
	s.Equal(0, s.session.Index())
	s.Empty(s.session.Selections())
}

func (s *SessionTestSuite) TestInvalidTransitionsLeaveStateUnchanged() {
	err := s.session.Confirm(true)
	s.ErrorIs(err, apperrors.ErrInvalidTransition)
	s.Equal(StateSelecting, s.session.State())

	err = s.session.RecordVerification(true)
	s.ErrorIs(err, apperrors.ErrInvalidTransition)

	_, err = s.session.Finish()
	s.ErrorIs(err, apperrors.ErrInvalidTransition)

	s.toVerifying()
	s.ErrorIs(s.session.Select(0), apperrors.ErrInvalidTransition)
	s.ErrorIs(s.session.Next(), apperrors.ErrInvalidTransition)
	s.ErrorIs(s.session.Previous(), apperrors.ErrInvalidTransition)
	s.Equal(StateVerifying, s.session.State())
	s.Len(s.session.Selections(), len(s.ballot))
}

func (s *SessionTestSuite) TestSuccessfulVerificationSubmits() {
	s.toVerifying()
	s.Require().NoError(s.session.RecordVerification(false))
	s.Equal(StateVerifying, s.session.State())
	s.Equal(2, s.session.AttemptsRemaining())

	s.Require().NoError(s.session.RecordVerification(true))
	s.Equal(StateSubmitted, s.session.State())

	selections, err := s.session.Finish()
	s.Require().NoError(err)
	s.Require().Len(selections, 2)
	s.Equal(s.ballot[0].ID, selections[0].PositionID)
	s.Equal(s.ballot[1].Candidates[0].ID, selections[1].CandidateID)
	s.Equal(StateSelecting, s.session.State())
	s.Empty(s.session.Selections())
}

func (s *SessionTestSuite) TestThirdFailureBlocksRetry() {
	s.toVerifying()
	s.Require().NoError(s.session.RecordVerification(false))
	s.Require().NoError(s.session.RecordVerification(false))

	err := s.session.RecordVerification(false)
	s.ErrorIs(err, apperrors.ErrVerificationExhausted)
	s.Equal(StateSelecting, s.session.State())
	s.Equal(0, s.session.Index())
	s.Empty(s.session.Selections())
	s.Equal(0, s.session.AttemptsRemaining())

	for range s.ballot {
		s.Require().NoError(s.session.VoiceSelect(0))
	}
	err = s.session.Confirm(true)
	s.ErrorIs(err, apperrors.ErrVerificationExhausted)
	s.Equal(StateSelecting, s.session.State())
	s.Equal(DefaultMaxAttempts, s.session.Snapshot().AttemptsUsed, "counter never exceeds the ceiling")
}

func (s *SessionTestSuite) TestMarkExhausted() {
	s.toVerifying()
	s.session.MarkExhausted()
	s.Equal(StateSelecting, s.session.State())
	s.Empty(s.session.Selections())
	s.True(s.session.Exhausted())
}

func (s *SessionTestSuite) TestResetKeepsAttempts() {
	s.toVerifying()
	s.Require().NoError(s.session.RecordVerification(false))
	s.session.Reset()
	s.Equal(2, s.session.AttemptsRemaining())
	s.Equal(StateSelecting, s.session.State())
}

func (s *SessionTestSuite) TestSnapshot() {
	s.Require().NoError(s.session.Select(1))
	snap := s.session.Snapshot()
	s.Equal(StateSelecting, snap.State)
	s.Equal(2, snap.PositionCount)
	s.Require().NotNil(snap.CurrentPosition)
	s.Equal("University President", snap.CurrentPosition.Name)
	s.Equal(3, snap.AttemptsRemaining)

	snap.CurrentPosition.Candidates[0].Name = "changed"
	s.Equal("Amina Njoroge", s.ballot[0].Candidates[0].Name)

	s.toVerifyingFromHere()
	s.Nil(s.session.Snapshot().CurrentPosition)
}

func (s *SessionTestSuite) toVerifyingFromHere() {
	for s.session.State() == StateSelecting {
		if s.session.Selected() == nil {
			s.Require().NoError(s.session.Select(0))
		}
		s.Require().NoError(s.session.Next())
	}
	s.Require().NoError(s.session.Confirm(true))
}

func TestSessionTestSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}

func TestStore(t *testing.T) {
	store := NewStore()
	voterID := uuid.New()

	_, err := store.Snapshot(voterID)
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)

	session, err := NewSession(voterID, testBallot(), DefaultMaxAttempts, 0)
	require.NoError(t, err)
	store.Put(session)
	assert.Equal(t, 1, store.Len())

	err = store.Do(voterID, func(s *Session) error { return s.Select(1) })
	require.NoError(t, err)

	snap, err := store.Snapshot(voterID)
	require.NoError(t, err)
	assert.Len(t, snap.Selections, 1)

	sentinel := errors.New("boom")
	assert.Equal(t, sentinel, store.Do(voterID, func(*Session) error { return sentinel }))

	assert.True(t, store.Delete(voterID))
	assert.False(t, store.Delete(voterID))
	assert.Equal(t, 0, store.Len())
}

func TestStoreSerializesVoterOperations(t *testing.T) {
	store := NewStore()
	voterID := uuid.New()
	ballot := testBallot()
	session, err := NewSession(voterID, ballot, DefaultMaxAttempts, 0)
	require.NoError(t, err)
	store.Put(session)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = store.Do(voterID, func(s *Session) error {
				if err := s.Select(i % 2); err != nil {
					return err
				}
				return s.Previous()
			})
		}(i)
	}
	wg.Wait()

	snap, err := store.Snapshot(voterID)
	require.NoError(t, err)
	assert.Equal(t, StateSelecting, snap.State)
	assert.Len(t, snap.Selections, 1)
}

func TestStoreRemoveKeepsReplacement(t *testing.T) {
	store := NewStore()
	voterID := uuid.New()

	first, err := NewSession(voterID, testBallot(), DefaultMaxAttempts, 0)
	require.NoError(t, err)
	store.Put(first)
	second, err := NewSession(voterID, testBallot(), DefaultMaxAttempts, 0)
	require.NoError(t, err)
	store.Put(second)

	assert.False(t, store.Remove(first))
	assert.Equal(t, 1, store.Len())
	require.NoError(t, store.Do(voterID, func(s *Session) error {
		assert.Same(t, second, s)
		return nil
	}))

	assert.True(t, store.Remove(second))
	assert.Equal(t, 0, store.Len())
}
