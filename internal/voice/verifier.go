package voice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	apperrors "voteverse-backend/internal/errors"
)

// Result is the voice model's verdict on one recording.
type Result struct {
	Match bool    `json:"match"`
	Score float64 `json:"score"`
}

// Verifier compares a fresh recording against the voter's enrolled sample.
type Verifier interface {
	Verify(ctx context.Context, sample, recording io.Reader) (*Result, error)
}

// HTTPVerifier posts both recordings to the voice model service as multipart
// form fields "sample" and "recording" and expects a JSON Result back.
type HTTPVerifier struct {
	endpoint   string
	httpClient *http.Client
}

// NewHTTPVerifier creates a verifier for the model service at endpoint.
func NewHTTPVerifier(endpoint string, timeout time.Duration) *HTTPVerifier {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPVerifier{
		endpoint:   strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Verify sends one request per call; transport errors and non-2xx responses
// are reported as ErrVerifierUnavailable so callers do not count them as attempts.
func (v *HTTPVerifier) Verify(ctx context.Context, sample, recording io.Reader) (*Result, error) {
	if v.endpoint == "" {
		return nil, apperrors.ErrVerifierNotConfigured
	}

	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)
	if err := writeAudioPart(form, "sample", "sample.wav", sample); err != nil {
		return nil, err
	}
	if err := writeAudioPart(form, "recording", "recording.wav", recording); err != nil {
		return nil, err
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("close multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint+"/verify", body)
	if err != nil {
		return nil, fmt.Errorf("create verifier request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrVerifierUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: status %d: %s", apperrors.ErrVerifierUnavailable, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", apperrors.ErrVerifierUnavailable, err)
	}
	return &result, nil
}

func writeAudioPart(form *multipart.Writer, field, filename string, r io.Reader) error {
	part, err := form.CreateFormFile(field, filename)
	if err != nil {
		return fmt.Errorf("create %s part: %w", field, err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return fmt.Errorf("copy %s audio: %w", field, err)
	}
	return nil
}
