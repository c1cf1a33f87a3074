package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"voteverse-backend/internal/database/models"
	apperrors "voteverse-backend/internal/errors"
	"voteverse-backend/internal/i18n"
	"voteverse-backend/internal/logger"
	"voteverse-backend/internal/metrics"
	"voteverse-backend/internal/repository"
	"voteverse-backend/internal/voice"
	"voteverse-backend/internal/voting"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VotingSessionConfig holds the voice settings surfaced to the client
type VotingSessionConfig struct {
	Passphrase       string
	RecordingSeconds int
}

// VotingSessionService drives the voting flow for each voter and renders the
// spoken prompt for every step.
type VotingSessionService struct {
	store         *voting.Store
	dispatcher    *voice.Dispatcher
	voterRepo     repository.VoterRepositoryInterface
	electionRepo  repository.ElectionRepositoryInterface
	positionRepo  repository.PositionRepositoryInterface
	candidateRepo repository.CandidateRepositoryInterface
	votes         VoteServiceInterface
	verification  VerificationServiceInterface
	translator    *i18n.Translator
	metrics       *metrics.Metrics
	cfg           VotingSessionConfig
}

var _ VotingSessionServiceInterface = (*VotingSessionService)(nil)

// NewVotingSessionService creates a new voting session service
func NewVotingSessionService(
	store *voting.Store,
	dispatcher *voice.Dispatcher,
	voterRepo repository.VoterRepositoryInterface,
	electionRepo repository.ElectionRepositoryInterface,
	positionRepo repository.PositionRepositoryInterface,
	candidateRepo repository.CandidateRepositoryInterface,
	votes VoteServiceInterface,
	verification VerificationServiceInterface,
	translator *i18n.Translator,
	m *metrics.Metrics,
	cfg VotingSessionConfig,
) *VotingSessionService {
	if cfg.Passphrase == "" {
		cfg.Passphrase = voice.DefaultPassphrase
	}
	if cfg.RecordingSeconds <= 0 {
		cfg.RecordingSeconds = 5
	}
	return &VotingSessionService{
		store:         store,
		dispatcher:    dispatcher,
		voterRepo:     voterRepo,
		electionRepo:  electionRepo,
		positionRepo:  positionRepo,
		candidateRepo: candidateRepo,
		votes:         votes,
		verification:  verification,
		translator:    translator,
		metrics:       m,
		cfg:           cfg,
	}
}

// SelectRequest picks a candidate by ballot index or by id
type SelectRequest struct {
	CandidateIndex *int       `json:"candidate_index,omitempty"`
	CandidateID    *uuid.UUID `json:"candidate_id,omitempty"`
}

// ConfirmRequest answers the review question
type ConfirmRequest struct {
	Confirmed bool `json:"confirmed"`
}

// CommandRequest carries one finalized utterance
type CommandRequest struct {
	Utterance string `json:"utterance" binding:"required"`
}

// SessionView is returned by every session operation
type SessionView struct {
	voting.Snapshot
	Prompt           string              `json:"prompt"`
	Passphrase       string              `json:"passphrase,omitempty"`
	RecordingSeconds int                 `json:"recordingSeconds"`
	Verification     *VerificationResult `json:"verification,omitempty"`
	Receipts         []VoteReceipt       `json:"receipts,omitempty"`
	Commands         []voice.Command     `json:"commands,omitempty"`
}

// Start opens a session on the ballot of the active election, replacing any
// earlier session of the voter.
func (s *VotingSessionService) Start(voterID uuid.UUID, lang string) (*SessionView, error) {
	voter, err := s.voterRepo.GetByID(voterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVoterNotFound
		}
		return nil, fmt.Errorf("failed to get voter: %w", err)
	}
	if voter.VotingStatus == models.VotingStatusVoted {
		return nil, apperrors.ErrAlreadyVoted
	}

	ballot, err := s.buildBallot(voter)
	if err != nil {
		return nil, err
	}
	failed, err := s.verification.FailedAttempts(voterID)
	if err != nil {
		return nil, err
	}

	session, err := voting.NewSession(voterID, ballot, s.verification.MaxAttempts(), failed)
	if err != nil {
		return nil, err
	}
	s.store.Put(session)
	s.metrics.SessionTransition(string(session.State()))

	return s.view(session, lang, ""), nil
}

// buildBallot lists the positions of the active election the voter may vote
// for, each with its approved, active candidates. College and block positions
// are limited to voters of that college or block, and positions the voter has
// already cast a vote for are left out.
func (s *VotingSessionService) buildBallot(voter *models.Voter) (voting.Ballot, error) {
	election, err := s.electionRepo.GetActive()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrElectionNotActive
		}
		return nil, fmt.Errorf("failed to get active election: %w", err)
	}
	positions, err := s.positionRepo.GetByElectionID(election.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get positions: %w", err)
	}
	history, err := s.votes.GetHistory(voter.ID)
	if err != nil {
		return nil, err
	}
	voted := make(map[uuid.UUID]bool, len(history))
	for _, v := range history {
		voted[v.PositionID] = true
	}

	var ballot voting.Ballot
	skipped := 0
	for _, p := range positions {
		if !eligible(voter, p) {
			continue
		}
		if voted[p.ID] {
			skipped++
			continue
		}
		candidates, err := s.candidateRepo.GetByPositionID(p.ID, true)
		if err != nil {
			return nil, fmt.Errorf("failed to get candidates: %w", err)
		}
		if len(candidates) == 0 {
			continue
		}
		bp := voting.BallotPosition{ID: p.ID, Name: p.Name}
		for _, c := range candidates {
			name := ""
			if c.Voter != nil {
				name = c.Voter.FullName()
			}
			bp.Candidates = append(bp.Candidates, voting.BallotCandidate{ID: c.ID, Name: name})
		}
		ballot = append(ballot, bp)
	}
	if len(ballot) == 0 {
		if skipped > 0 {
			return nil, apperrors.ErrAlreadyVoted
		}
		return nil, apperrors.ErrEmptyBallot
	}
	return ballot, nil
}

func eligible(voter *models.Voter, p models.Position) bool {
	switch p.Level {
	case models.PositionLevelCollege:
		return p.College == "" || strings.EqualFold(p.College, voter.College)
	case models.PositionLevelBlock:
		return p.DormBlock == "" || strings.EqualFold(p.DormBlock, voter.DormBlock)
	default:
		return true
	}
}

// Get returns the voter's current session
func (s *VotingSessionService) Get(voterID uuid.UUID, lang string) (*SessionView, error) {
	var view *SessionView
	err := s.store.Do(voterID, func(session *voting.Session) error {
		view = s.view(session, lang, "")
		return nil
	})
	return view, err
}

// Select records a choice for the current position without advancing
func (s *VotingSessionService) Select(voterID uuid.UUID, lang string, req *SelectRequest) (*SessionView, error) {
	if (req.CandidateIndex == nil) == (req.CandidateID == nil) {
		return nil, apperrors.NewValidationError("candidate", "exactly one of candidate_index or candidate_id is required")
	}
	var view *SessionView
	err := s.store.Do(voterID, func(session *voting.Session) error {
		var err error
		if req.CandidateIndex != nil {
			err = session.Select(*req.CandidateIndex)
		} else {
			err = session.SelectCandidate(*req.CandidateID)
		}
		if err != nil {
			return err
		}
		lead := s.translator.T(lang, i18n.MsgCandidateSelected, map[string]interface{}{"Name": session.Selected().Name})
		view = &SessionView{
			Snapshot:         session.Snapshot(),
			Prompt:           lead,
			RecordingSeconds: s.cfg.RecordingSeconds,
		}
		return nil
	})
	return view, err
}

// Next advances to the following position or to the review step
func (s *VotingSessionService) Next(voterID uuid.UUID, lang string) (*SessionView, error) {
	return s.step(voterID, lang, func(session *voting.Session) (string, error) {
		return "", session.Next()
	})
}

// Previous moves back one position
func (s *VotingSessionService) Previous(voterID uuid.UUID, lang string) (*SessionView, error) {
	return s.step(voterID, lang, func(session *voting.Session) (string, error) {
		return "", session.Previous()
	})
}

// Confirm answers the review question. No starts over; yes moves on to voice
// verification unless the attempt ceiling was already reached.
func (s *VotingSessionService) Confirm(voterID uuid.UUID, lang string, req *ConfirmRequest) (*SessionView, error) {
	return s.step(voterID, lang, func(session *voting.Session) (string, error) {
		if err := session.Confirm(req.Confirmed); err != nil {
			return "", err
		}
		if !req.Confirmed {
			return s.translator.T(lang, i18n.MsgStartOver, nil), nil
		}
		return "", nil
	})
}

func (s *VotingSessionService) step(voterID uuid.UUID, lang string, fn func(*voting.Session) (string, error)) (*SessionView, error) {
	var view *SessionView
	err := s.store.Do(voterID, func(session *voting.Session) error {
		before := session.State()
		lead, err := fn(session)
		s.track(before, session)
		if err != nil {
			return err
		}
		view = s.view(session, lang, lead)
		return nil
	})
	return view, err
}

// Verify checks the spoken passphrase recording. On a match the ballot is
// submitted in one transaction and the session is closed.
func (s *VotingSessionService) Verify(ctx context.Context, voterID uuid.UUID, lang string, recording io.Reader, size int64, meta VoteMeta) (*SessionView, error) {
	var view *SessionView
	var submitted *voting.Session
	err := s.store.Do(voterID, func(session *voting.Session) error {
		if session.State() != voting.StateVerifying {
			return fmt.Errorf("%w: verify while %s", apperrors.ErrInvalidTransition, session.State())
		}
		before := session.State()
		defer s.track(before, session)

		result, err := s.verification.Verify(ctx, voterID, recording, size, lang)
		if err != nil {
			if errors.Is(err, apperrors.ErrVerificationExhausted) {
				session.MarkExhausted()
			}
			return err
		}

		if !result.Success {
			if err := session.RecordVerification(false); err != nil && !errors.Is(err, apperrors.ErrVerificationExhausted) {
				return err
			}
			if result.AttemptsRemaining == 0 && !session.Exhausted() {
				session.MarkExhausted()
			}
			lead := result.Message
			if session.Exhausted() {
				lead = s.translator.T(lang, i18n.MsgVerificationExhausted, nil)
			}
			view = s.view(session, lang, lead)
			view.Verification = result
			return nil
		}

		if err := session.RecordVerification(true); err != nil {
			return err
		}
		view = s.view(session, lang, "")
		view.Verification = result

		selections, err := session.Finish()
		if err != nil {
			return err
		}
		choices := make([]BallotChoice, len(selections))
		for i, sel := range selections {
			choices[i] = BallotChoice{PositionID: sel.PositionID, CandidateID: sel.CandidateID}
		}
		receipts, err := s.votes.SubmitBallot(voterID, choices, meta)
		if err != nil {
			logger.WithContext(ctx).Errorf("ballot submission failed: %v", err)
			return err
		}
		view.Receipts = receipts
		submitted = session
		return nil
	})
	if err != nil {
		return nil, err
	}
	if submitted != nil {
		s.store.Remove(submitted)
	}
	return view, nil
}

// Command applies a spoken utterance to the session. Navigation commands are
// returned for the client to follow.
func (s *VotingSessionService) Command(voterID uuid.UUID, lang, utterance string) (*SessionView, error) {
	commands := s.dispatcher.Dispatch(utterance, voice.RouteVoting)
	for _, cmd := range commands {
		s.metrics.VoiceCommand(string(cmd.Kind))
	}

	var view *SessionView
	err := s.store.Do(voterID, func(session *voting.Session) error {
		before := session.State()
		lead := ""
		for _, cmd := range commands {
			lead = s.apply(session, lang, cmd)
		}
		s.track(before, session)
		view = s.view(session, lang, lead)
		view.Commands = commands
		return nil
	})
	return view, err
}

// apply runs one dispatched command and returns the lead-in of the next
// prompt. Commands that do not fit the current state only re-prompt.
func (s *VotingSessionService) apply(session *voting.Session, lang string, cmd voice.Command) string {
	switch cmd.Kind {
	case voice.KindSelectCandidate:
		pos := session.CurrentPosition()
		if pos == nil || cmd.CandidateIndex >= len(pos.Candidates) {
			return ""
		}
		name := pos.Candidates[cmd.CandidateIndex].Name
		if err := session.VoiceSelect(cmd.CandidateIndex); err != nil {
			return ""
		}
		return s.translator.T(lang, i18n.MsgCandidateSelected, map[string]interface{}{"Name": name})
	case voice.KindConfirm:
		return s.confirmByVoice(session, lang, cmd.Confirmed)
	case voice.KindPassphrase:
		if session.State() == voting.StateConfirming {
			return s.confirmByVoice(session, lang, true)
		}
	}
	return ""
}

func (s *VotingSessionService) confirmByVoice(session *voting.Session, lang string, yes bool) string {
	err := session.Confirm(yes)
	switch {
	case errors.Is(err, apperrors.ErrVerificationExhausted):
		return s.translator.T(lang, i18n.MsgVerificationExhausted, nil)
	case err != nil:
		return ""
	case !yes:
		return s.translator.T(lang, i18n.MsgStartOver, nil)
	}
	return ""
}

// Cancel discards the voter's session
func (s *VotingSessionService) Cancel(voterID uuid.UUID) error {
	if !s.store.Delete(voterID) {
		return apperrors.ErrSessionNotFound
	}
	return nil
}

func (s *VotingSessionService) track(before voting.State, session *voting.Session) {
	if after := session.State(); after != before {
		s.metrics.SessionTransition(string(after))
	}
}

func (s *VotingSessionService) view(session *voting.Session, lang, lead string) *SessionView {
	view := &SessionView{
		Snapshot:         session.Snapshot(),
		RecordingSeconds: s.cfg.RecordingSeconds,
	}
	if session.State() == voting.StateVerifying {
		view.Passphrase = s.cfg.Passphrase
	}
	parts := make([]string, 0, 2)
	if lead != "" {
		parts = append(parts, lead)
	}
	parts = append(parts, s.statePrompt(session, lang))
	view.Prompt = strings.Join(parts, " ")
	return view
}

func (s *VotingSessionService) statePrompt(session *voting.Session, lang string) string {
	switch session.State() {
	case voting.StateSelecting:
		return s.announce(session.CurrentPosition(), lang)
	case voting.StateConfirming:
		return s.translator.T(lang, i18n.MsgConfirmSelections, nil)
	case voting.StateVerifying:
		return s.translator.T(lang, i18n.MsgSayPassphrase, map[string]interface{}{"Passphrase": s.cfg.Passphrase})
	default:
		return s.translator.T(lang, i18n.MsgVoteSuccess, nil)
	}
}

func (s *VotingSessionService) announce(pos *voting.BallotPosition, lang string) string {
	var b strings.Builder
	b.WriteString(s.translator.T(lang, i18n.MsgAnnouncePosition, map[string]interface{}{"Position": pos.Name}))
	for i, c := range pos.Candidates {
		b.WriteString(s.translator.T(lang, i18n.MsgAnnounceCandidate, map[string]interface{}{"Number": i + 1, "Name": c.Name}))
	}
	b.WriteString(s.translator.T(lang, i18n.MsgAnnounceInstruction, nil))
	return b.String()
}
