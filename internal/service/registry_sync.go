package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"voteverse-backend/internal/database/models"
	apperrors "voteverse-backend/internal/errors"
	"voteverse-backend/internal/logger"
	"voteverse-backend/internal/metrics"
	"voteverse-backend/internal/registry"
	"voteverse-backend/internal/repository"
)

// RegistrySource lists the voters of the university registry
type RegistrySource interface {
	List(ctx context.Context) ([]registry.Record, error)
}

// RegistrySyncService copies registry voters into the local voters table
type RegistrySyncService struct {
	source    RegistrySource
	voterRepo repository.VoterRepositoryInterface
	metrics   *metrics.Metrics
}

var _ RegistrySyncServiceInterface = (*RegistrySyncService)(nil)

// NewRegistrySyncService creates a new registry sync service. A nil source
// means no registry is configured.
func NewRegistrySyncService(source RegistrySource, voterRepo repository.VoterRepositoryInterface, m *metrics.Metrics) *RegistrySyncService {
	return &RegistrySyncService{
		source:    source,
		voterRepo: voterRepo,
		metrics:   m,
	}
}

// SyncReport summarizes one sync run
type SyncReport struct {
	Total    int           `json:"total"`
	Created  int           `json:"created"`
	Updated  int           `json:"updated"`
	Failed   int           `json:"failed"`
	Errors   []string      `json:"errors,omitempty"`
	Duration time.Duration `json:"duration_ns"`
}

// Sync upserts every registry voter by registration number. Rows that cannot
// be stored are counted and reported but do not stop the run.
func (s *RegistrySyncService) Sync(ctx context.Context) (*SyncReport, error) {
	if s.source == nil {
		return nil, apperrors.ErrRegistryNotConfigured
	}
	log := logger.WithContext(ctx)
	start := time.Now()

	records, err := s.source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry: %w", err)
	}

	report := &SyncReport{Total: len(records)}
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		voter, err := voterFromRecord(rec)
		if err == nil {
			var created bool
			created, err = s.voterRepo.UpsertByRegNo(voter)
			if err == nil {
				if created {
					report.Created++
				} else {
					report.Updated++
				}
				continue
			}
		}
		report.Failed++
		report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", rec.RegNo, err))
		log.WithField("reg_no", rec.RegNo).Warnf("registry voter not synced: %v", err)
	}
	report.Duration = time.Since(start)

	s.metrics.RegistrySynced("created", report.Created)
	s.metrics.RegistrySynced("updated", report.Updated)
	s.metrics.RegistrySynced("failed", report.Failed)

	log.WithFields(map[string]interface{}{
		"total":   report.Total,
		"created": report.Created,
		"updated": report.Updated,
		"failed":  report.Failed,
	}).Info("registry sync finished")

	return report, nil
}

func voterFromRecord(rec registry.Record) (*models.Voter, error) {
	regNo := strings.TrimSpace(rec.RegNo)
	if regNo == "" {
		return nil, apperrors.NewValidationError("reg_no", "missing")
	}
	email := strings.ToLower(strings.TrimSpace(rec.Email))
	if email == "" {
		return nil, apperrors.NewValidationError("email", "missing")
	}
	first, last := rec.SplitName()
	if first == "" {
		return nil, apperrors.NewValidationError("name", "missing")
	}
	return &models.Voter{
		RegNo:        regNo,
		FirstName:    first,
		LastName:     last,
		Email:        email,
		Phone:        strings.TrimSpace(rec.PhoneNumber),
		College:      rec.College,
		Programme:    rec.Programme,
		YearOfStudy:  rec.YearOfStudy,
		DormBlock:    rec.DormBlock,
		ImageURL:     rec.ImageURL,
		Role:         models.RoleVoter,
		VotingStatus: models.VotingStatusNotVoted,
	}, nil
}
