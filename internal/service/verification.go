package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"voteverse-backend/internal/database/models"
	apperrors "voteverse-backend/internal/errors"
	"voteverse-backend/internal/i18n"
	"voteverse-backend/internal/logger"
	"voteverse-backend/internal/metrics"
	"voteverse-backend/internal/repository"
	"voteverse-backend/internal/voice"

	"github.com/google/uuid"
)

// VerificationConfig bounds voice verification
type VerificationConfig struct {
	MaxAttempts int
	Window      time.Duration
	MaxBytes    int64
}

// VerificationService checks recordings against enrolled samples and enforces
// the attempt ceiling.
type VerificationService struct {
	attempts   repository.VerificationAttemptRepositoryInterface
	voterRepo  repository.VoterRepositoryInterface
	samples    VoiceSampleServiceInterface
	verifier   voice.Verifier
	translator *i18n.Translator
	metrics    *metrics.Metrics
	cfg        VerificationConfig
	locks      *voterLocks
	now        func() time.Time
}

var _ VerificationServiceInterface = (*VerificationService)(nil)

// NewVerificationService creates a new verification service
func NewVerificationService(
	attempts repository.VerificationAttemptRepositoryInterface,
	voterRepo repository.VoterRepositoryInterface,
	samples VoiceSampleServiceInterface,
	verifier voice.Verifier,
	translator *i18n.Translator,
	m *metrics.Metrics,
	cfg VerificationConfig,
) *VerificationService {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 3
	}
	if cfg.Window <= 0 {
		cfg.Window = 24 * time.Hour
	}
	return &VerificationService{
		attempts:   attempts,
		voterRepo:  voterRepo,
		samples:    samples,
		verifier:   verifier,
		translator: translator,
		metrics:    m,
		cfg:        cfg,
		locks:      newVoterLocks(),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// VerificationResult is the body of the verify-voice response
type VerificationResult struct {
	Success           bool    `json:"success"`
	Message           string  `json:"message"`
	AttemptsRemaining int     `json:"attemptsRemaining"`
	Score             float64 `json:"score,omitempty"`
}

// MaxAttempts returns the configured ceiling
func (s *VerificationService) MaxAttempts() int {
	return s.cfg.MaxAttempts
}

// FailedAttempts counts failures inside the window since the last success
func (s *VerificationService) FailedAttempts(voterID uuid.UUID) (int, error) {
	since := s.now().Add(-s.cfg.Window)
	last, err := s.attempts.LastSuccessAt(voterID)
	if err != nil {
		return 0, fmt.Errorf("failed to get last verification: %w", err)
	}
	if last != nil && last.After(since) {
		since = *last
	}
	n, err := s.attempts.CountFailuresSince(voterID, since)
	if err != nil {
		return 0, fmt.Errorf("failed to count verification attempts: %w", err)
	}
	if int(n) > s.cfg.MaxAttempts {
		return s.cfg.MaxAttempts, nil
	}
	return int(n), nil
}

// Verify checks one recording. A verifier outage fails the call without
// consuming an attempt. Reaching the ceiling returns ErrVerificationExhausted.
// Attempts of one voter are serialized.
func (s *VerificationService) Verify(ctx context.Context, voterID uuid.UUID, recording io.Reader, size int64, lang string) (*VerificationResult, error) {
	log := logger.WithContext(ctx)

	if err := checkAudioSize(size, s.cfg.MaxBytes); err != nil {
		return nil, err
	}
	audio, err := readAudio(recording, s.cfg.MaxBytes)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.lock(voterID)
	defer unlock()

	failed, err := s.FailedAttempts(voterID)
	if err != nil {
		return nil, err
	}
	if failed >= s.cfg.MaxAttempts {
		s.metrics.VerificationAttempt(metrics.OutcomeExhausted)
		return nil, apperrors.ErrVerificationExhausted
	}

	sample, err := s.samples.Open(ctx, voterID)
	if err != nil {
		return nil, err
	}
	defer sample.Close()

	result, err := s.verifier.Verify(ctx, sample, bytesReader(audio))
	if err != nil {
		s.metrics.VerificationAttempt(metrics.OutcomeError)
		log.Warnf("voice verifier call failed: %v", err)
		return nil, err
	}

	attempt := &models.VerificationAttempt{
		VoterID:     voterID,
		Success:     result.Match,
		Score:       result.Score,
		AttemptedAt: s.now(),
	}
	if err := s.attempts.Create(attempt); err != nil {
		return nil, fmt.Errorf("failed to record verification attempt: %w", err)
	}

	if result.Match {
		s.metrics.VerificationAttempt(metrics.OutcomeVerified)
		if err := s.voterRepo.UpdateFields(voterID, map[string]interface{}{"voice_verified": true}); err != nil {
			log.Warnf("failed to flag voter as voice verified: %v", err)
		}
		return &VerificationResult{
			Success:           true,
			Message:           s.translator.T(lang, i18n.MsgVerificationSuccess, nil),
			AttemptsRemaining: s.cfg.MaxAttempts,
			Score:             result.Score,
		}, nil
	}

	remaining := s.cfg.MaxAttempts - failed - 1
	if remaining <= 0 {
		s.metrics.VerificationAttempt(metrics.OutcomeExhausted)
		log.Warn("voice verification attempts exhausted")
		return &VerificationResult{
			Success:           false,
			Message:           s.translator.T(lang, i18n.MsgVerificationExhausted, nil),
			AttemptsRemaining: 0,
			Score:             result.Score,
		}, nil
	}
	s.metrics.VerificationAttempt(metrics.OutcomeRejected)
	return &VerificationResult{
		Success:           false,
		Message:           s.translator.Plural(lang, i18n.MsgVerificationFailed, remaining, nil),
		AttemptsRemaining: remaining,
		Score:             result.Score,
	}, nil
}
