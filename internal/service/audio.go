package service

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"hash"
	"io"

	apperrors "voteverse-backend/internal/errors"
)

func bytesReader(b []byte) io.Reader { return bytes.NewReader(b) }

// voiceSampleKey derives the blob key of a voter's enrolled sample without
// exposing the registration number.
func voiceSampleKey(regNo string) string {
	sum := sha256.Sum256([]byte(regNo))
	return "voice-samples/" + base64.RawURLEncoding.EncodeToString(sum[:]) + "/sample.wav"
}

// isWAV reports whether head starts with a RIFF/WAVE header
func isWAV(head []byte) bool {
	return len(head) >= 12 && string(head[0:4]) == "RIFF" && string(head[8:12]) == "WAVE"
}

// checksumReader hashes everything read through it
type checksumReader struct {
	r io.Reader
	h hash.Hash
	n int64
}

func newChecksumReader(r io.Reader) *checksumReader {
	return &checksumReader{r: r, h: sha256.New()}
}

func (c *checksumReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	if n > 0 {
		c.h.Write(p[:n])
		c.n += int64(n)
	}
	return n, err
}

func (c *checksumReader) Sum() string { return hex.EncodeToString(c.h.Sum(nil)) }

// readAudio buffers a recording of at most max bytes. Bodies longer than max
// are rejected rather than truncated.
func readAudio(r io.Reader, max int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, max+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read audio: %w", err)
	}
	if int64(len(data)) > max {
		return nil, apperrors.ErrAudioTooLarge
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty file", apperrors.ErrInvalidAudio)
	}
	return data, nil
}
