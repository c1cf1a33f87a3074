package voice

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	apperrors "voteverse-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func jsonResponse(status int, body string) *http.Response {
	resp := &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     make(http.Header),
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp
}

func newVerifierWithTransport(rt roundTripFunc) *HTTPVerifier {
	v := NewHTTPVerifier("http://voice-model.local/", time.Second)
	v.httpClient = &http.Client{Transport: rt}
	return v
}

func TestHTTPVerifier_Match(t *testing.T) {
	v := newVerifierWithTransport(func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "/verify", req.URL.Path)

		require.NoError(t, req.ParseMultipartForm(1<<20))
		sample, _, err := req.FormFile("sample")
		require.NoError(t, err)
		sampleBytes, _ := io.ReadAll(sample)
		assert.Equal(t, "enrolled", string(sampleBytes))

		recording, _, err := req.FormFile("recording")
		require.NoError(t, err)
		recordingBytes, _ := io.ReadAll(recording)
		assert.Equal(t, "spoken", string(recordingBytes))

		return jsonResponse(200, `{"match": true, "score": 0.91}`), nil
	})

	result, err := v.Verify(context.Background(), strings.NewReader("enrolled"), strings.NewReader("spoken"))
	require.NoError(t, err)
	assert.True(t, result.Match)
	assert.InDelta(t, 0.91, result.Score, 1e-9)
}

func TestHTTPVerifier_NoMatch(t *testing.T) {
	v := newVerifierWithTransport(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(200, `{"match": false, "score": 0.42}`), nil
	})

	result, err := v.Verify(context.Background(), strings.NewReader("a"), strings.NewReader("b"))
	require.NoError(t, err)
	assert.False(t, result.Match)
}

func TestHTTPVerifier_Unavailable(t *testing.T) {
	tests := []struct {
		name string
		rt   roundTripFunc
	}{
		{"transport error", func(*http.Request) (*http.Response, error) { return nil, errors.New("connection refused") }},
		{"server error", func(*http.Request) (*http.Response, error) { return jsonResponse(503, `{"error":"busy"}`), nil }},
		{"malformed body", func(*http.Request) (*http.Response, error) { return jsonResponse(200, `not json`), nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newVerifierWithTransport(tt.rt)
			_, err := v.Verify(context.Background(), strings.NewReader("a"), strings.NewReader("b"))
			assert.ErrorIs(t, err, apperrors.ErrVerifierUnavailable)
		})
	}
}

func TestHTTPVerifier_NotConfigured(t *testing.T) {
	v := NewHTTPVerifier("", 0)
	_, err := v.Verify(context.Background(), strings.NewReader("a"), strings.NewReader("b"))
	assert.Equal(t, apperrors.ErrVerifierNotConfigured, err)
}
