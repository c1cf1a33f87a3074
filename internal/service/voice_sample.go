package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"voteverse-backend/internal/database/models"
	apperrors "voteverse-backend/internal/errors"
	"voteverse-backend/internal/logger"
	"voteverse-backend/internal/repository"
	"voteverse-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VoiceSampleService manages each voter's enrolled voice recording
type VoiceSampleService struct {
	repo      repository.VoiceSampleRepositoryInterface
	voterRepo repository.VoterRepositoryInterface
	blobs     storage.Store
	maxBytes  int64
}

var _ VoiceSampleServiceInterface = (*VoiceSampleService)(nil)

// NewVoiceSampleService creates a new voice sample service
func NewVoiceSampleService(
	repo repository.VoiceSampleRepositoryInterface,
	voterRepo repository.VoterRepositoryInterface,
	blobs storage.Store,
	maxBytes int64,
) *VoiceSampleService {
	return &VoiceSampleService{
		repo:      repo,
		voterRepo: voterRepo,
		blobs:     blobs,
		maxBytes:  maxBytes,
	}
}

// VoiceSampleStatus reports whether a voter has enrolled
type VoiceSampleStatus struct {
	HasSample  bool       `json:"has_sample"`
	SizeBytes  int64      `json:"size_bytes,omitempty"`
	UploadedAt *time.Time `json:"uploaded_at,omitempty"`
}

// Upload stores a WAV recording as the voter's sample, replacing any earlier one
func (s *VoiceSampleService) Upload(ctx context.Context, voterID uuid.UUID, r io.Reader, size int64) (*VoiceSampleStatus, error) {
	if err := checkAudioSize(size, s.maxBytes); err != nil {
		return nil, err
	}
	voter, err := s.voterRepo.GetByID(voterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVoterNotFound
		}
		return nil, fmt.Errorf("failed to get voter: %w", err)
	}

	head := make([]byte, 12)
	n, err := io.ReadFull(r, head)
	if err != nil || !isWAV(head[:n]) {
		return nil, fmt.Errorf("%w: expected a WAV recording", apperrors.ErrInvalidAudio)
	}

	key := voiceSampleKey(voter.RegNo)
	body := newChecksumReader(io.MultiReader(bytesReader(head[:n]), io.LimitReader(r, s.maxBytes-int64(n))))
	info, err := s.blobs.Put(ctx, key, body, storage.PutOptions{
		ContentType: "audio/wav",
		Metadata:    map[string]string{"voter_id": voterID.String()},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store voice sample: %w", err)
	}

	sample := &models.VoiceSample{
		VoterID:     voterID,
		ObjectKey:   key,
		ContentType: "audio/wav",
		SizeBytes:   body.n,
		Checksum:    body.Sum(),
	}
	if err := s.repo.Save(sample); err != nil {
		return nil, fmt.Errorf("failed to save voice sample: %w", err)
	}

	logger.WithContext(ctx).WithField("size_bytes", info.Size).Info("voice sample enrolled")

	now := time.Now().UTC()
	return &VoiceSampleStatus{HasSample: true, SizeBytes: body.n, UploadedAt: &now}, nil
}

// Status reports whether the voter has an enrolled sample
func (s *VoiceSampleService) Status(voterID uuid.UUID) (*VoiceSampleStatus, error) {
	sample, err := s.repo.GetByVoterID(voterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &VoiceSampleStatus{HasSample: false}, nil
		}
		return nil, fmt.Errorf("failed to get voice sample: %w", err)
	}
	uploaded := sample.UpdatedAt
	return &VoiceSampleStatus{HasSample: true, SizeBytes: sample.SizeBytes, UploadedAt: &uploaded}, nil
}

// Open returns the enrolled sample for verification. The caller closes the reader.
func (s *VoiceSampleService) Open(ctx context.Context, voterID uuid.UUID) (io.ReadCloser, error) {
	sample, err := s.repo.GetByVoterID(voterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVoiceSampleNotFound
		}
		return nil, fmt.Errorf("failed to get voice sample: %w", err)
	}
	_, rc, err := s.blobs.Get(ctx, sample.ObjectKey)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrVoiceSampleNotFound
		}
		return nil, fmt.Errorf("failed to read voice sample: %w", err)
	}
	return rc, nil
}

// Delete removes the voter's sample and its metadata
func (s *VoiceSampleService) Delete(ctx context.Context, voterID uuid.UUID) error {
	sample, err := s.repo.GetByVoterID(voterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrVoiceSampleNotFound
		}
		return fmt.Errorf("failed to get voice sample: %w", err)
	}
	if err := s.blobs.Delete(ctx, sample.ObjectKey); err != nil && !apperrors.IsNotFound(err) {
		return fmt.Errorf("failed to delete voice sample: %w", err)
	}
	if err := s.repo.DeleteByVoterID(voterID); err != nil {
		return fmt.Errorf("failed to delete voice sample: %w", err)
	}
	return nil
}

func checkAudioSize(size, max int64) error {
	if size <= 0 {
		return fmt.Errorf("%w: empty file", apperrors.ErrInvalidAudio)
	}
	if size > max {
		return apperrors.ErrAudioTooLarge
	}
	return nil
}
