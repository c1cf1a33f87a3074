package service_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"voteverse-backend/internal/database/models"
	apperrors "voteverse-backend/internal/errors"
	"voteverse-backend/internal/mocks"
	"voteverse-backend/internal/service"
	"voteverse-backend/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func wavBytes(payload int) []byte {
	b := []byte("RIFF\x00\x00\x00\x00WAVEfmt ")
	return append(b, bytes.Repeat([]byte{1}, payload)...)
}

func TestVoiceSampleUploadAndOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	samples := mocks.NewMockVoiceSampleRepositoryInterface(ctrl)
	voters := mocks.NewMockVoterRepositoryInterface(ctrl)
	blobs := storage.NewMemory()
	svc := service.NewVoiceSampleService(samples, voters, blobs, 1<<20)

	voterID := uuid.New()
	audio := wavBytes(100)
	var saved *models.VoiceSample

	voters.EXPECT().GetByID(voterID).Return(&models.Voter{RegNo: "S2021/001"}, nil)
	samples.EXPECT().Save(gomock.Any()).DoAndReturn(func(s *models.VoiceSample) error {
		saved = s
		return nil
	})

	status, err := svc.Upload(context.Background(), voterID, bytes.NewReader(audio), int64(len(audio)))
	require.NoError(t, err)
	assert.True(t, status.HasSample)
	assert.Equal(t, int64(len(audio)), status.SizeBytes)
	require.NotNil(t, saved)
	assert.Len(t, saved.Checksum, 64)
	assert.NotContains(t, saved.ObjectKey, "S2021")

	samples.EXPECT().GetByVoterID(voterID).Return(saved, nil)
	rc, err := svc.Open(context.Background(), voterID)
	require.NoError(t, err)
	defer rc.Close()
	got, _ := io.ReadAll(rc)
	assert.Equal(t, audio, got)
}

func TestVoiceSampleUpload_Rejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	samples := mocks.NewMockVoiceSampleRepositoryInterface(ctrl)
	voters := mocks.NewMockVoterRepositoryInterface(ctrl)
	svc := service.NewVoiceSampleService(samples, voters, storage.NewMemory(), 64)
	voterID := uuid.New()

	t.Run("empty", func(t *testing.T) {
		_, err := svc.Upload(context.Background(), voterID, bytes.NewReader(nil), 0)
		assert.ErrorIs(t, err, apperrors.ErrInvalidAudio)
	})

	t.Run("too large", func(t *testing.T) {
		_, err := svc.Upload(context.Background(), voterID, bytes.NewReader(wavBytes(100)), 120)
		assert.ErrorIs(t, err, apperrors.ErrAudioTooLarge)
	})

	t.Run("not wav", func(t *testing.T) {
		voters.EXPECT().GetByID(voterID).Return(&models.Voter{RegNo: "S1"}, nil)
		_, err := svc.Upload(context.Background(), voterID, bytes.NewReader([]byte("ID3 mp3 audio here")), 18)
		assert.ErrorIs(t, err, apperrors.ErrInvalidAudio)
	})
}

func TestVoiceSampleStatusAndOpen_Missing(t *testing.T) {
	ctrl := gomock.NewController(t)
	samples := mocks.NewMockVoiceSampleRepositoryInterface(ctrl)
	svc := service.NewVoiceSampleService(samples, nil, storage.NewMemory(), 1<<20)
	voterID := uuid.New()

	samples.EXPECT().GetByVoterID(voterID).Return(nil, gorm.ErrRecordNotFound).Times(2)

	status, err := svc.Status(voterID)
	require.NoError(t, err)
	assert.False(t, status.HasSample)

	_, err = svc.Open(context.Background(), voterID)
	assert.ErrorIs(t, err, apperrors.ErrVoiceSampleNotFound)
}
