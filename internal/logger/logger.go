// Package logger wraps logrus with the voter and request fields every
// request-scoped log line carries.
package logger

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Context keys read by WithContext. The auth middleware stores these on the gin context.
const (
	ContextKeyRegNo     = "reg_no"
	ContextKeyRequestID = "request_id"
)

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// Setup configures the standard logger for JSON output on stdout. Unknown
// levels fall back to info and are reported once the logger is usable.
func Setup(level string) {
	setup(os.Stdout, level)
}

func setup(out io.Writer, level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(out)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.SetLevel(logrus.InfoLevel)
		logrus.WithField("log_level", level).Warn("unknown log level, using info")
		return
	}
	logrus.SetLevel(parsed)
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// WithContext creates a logger with voter and request information
func WithContext(ctx context.Context) *Logger {
	regNo, _ := ctx.Value(ContextKeyRegNo).(string)
	l := New().WithVoter(regNo)

	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok && requestID != "" {
		l = l.WithField("request_id", requestID)
	}
	return l
}

// WithVoter tags the entry with a registration number, or "anonymous" when empty
func (l *Logger) WithVoter(regNo string) *Logger {
	if regNo == "" {
		regNo = "anonymous"
	}
	return l.WithField("voter", regNo)
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{Entry: l.Entry.WithField(key, value)}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{Entry: l.Entry.WithFields(fields)}
}

// WithError attaches err under the standard logrus error key
func (l *Logger) WithError(err error) *Logger {
	return &Logger{Entry: l.Entry.WithError(err)}
}
