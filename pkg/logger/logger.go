// Package logger wraps logrus with the field conventions used across the
// showroom: every entry carries the app name and version, and request
// scoped loggers carry the request id.
package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

type Logger struct {
	logger *logrus.Logger
	fields logrus.Fields
}

type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
	FatalLevel LogLevel = "fatal"
)

type ctxKey string

// RequestIDKey is the context key the request id middleware stores its value under.
const RequestIDKey ctxKey = "request_id"

type Config struct {
	Level   LogLevel
	Format  string // json or text
	Output  string // stdout, stderr or a file path
	Caller  bool
	AppName string
	Version string
}

func NewLogger(config *Config) (*Logger, error) {
	out, err := openOutput(config.Output)
	if err != nil {
		return nil, err
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetReportCaller(config.Caller)
	l.SetLevel(parseLevel(config.Level))
	l.SetFormatter(newFormatter(config.Format))

	fields := logrus.Fields{}
	if config.AppName != "" {
		fields["app"] = config.AppName
	}
	if config.Version != "" {
		fields["version"] = config.Version
	}

	return &Logger{logger: l, fields: fields}, nil
}

// NewNop returns a logger that discards everything. Handy in tests.
func NewNop() *Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return &Logger{logger: l, fields: logrus.Fields{}}
}

func openOutput(output string) (io.Writer, error) {
	switch output {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		return os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	}
}

func newFormatter(format string) logrus.Formatter {
	if format == "text" {
		return &logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
			DisableColors:   true,
		}
	}
	return &logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "timestamp",
			logrus.FieldKeyMsg:  "message",
		},
	}
}

func parseLevel(level LogLevel) logrus.Level {
	parsed, err := logrus.ParseLevel(string(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}

func (l *Logger) with(fields map[string]interface{}) *Logger {
	merged := make(logrus.Fields, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &Logger{logger: l.logger, fields: merged}
}

func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.with(map[string]interface{}{key: value})
}

func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return l.with(fields)
}

// WithContext adds the request id carried by ctx, if any.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	if ctx == nil {
		return l
	}
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok && requestID != "" {
		return l.WithRequestID(requestID)
	}
	return l
}

func (l *Logger) WithError(err error) *Logger {
	if err == nil {
		return l
	}
	return l.WithField("error", err.Error())
}

func (l *Logger) WithRequestID(requestID string) *Logger {
	return l.WithField("request_id", requestID)
}

func (l *Logger) WithCollection(collection string) *Logger {
	return l.WithField("collection", collection)
}

func (l *Logger) entry() *logrus.Entry {
	return l.logger.WithFields(l.fields)
}

func (l *Logger) Debug(msg string)                          { l.entry().Debug(msg) }
func (l *Logger) Debugf(format string, args ...interface{}) { l.entry().Debugf(format, args...) }
func (l *Logger) Info(msg string)                           { l.entry().Info(msg) }
func (l *Logger) Infof(format string, args ...interface{})  { l.entry().Infof(format, args...) }
func (l *Logger) Warn(msg string)                           { l.entry().Warn(msg) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.entry().Warnf(format, args...) }
func (l *Logger) Error(msg string)                          { l.entry().Error(msg) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.entry().Errorf(format, args...) }
func (l *Logger) Fatal(msg string)                          { l.entry().Fatal(msg) }
func (l *Logger) Fatalf(format string, args ...interface{}) { l.entry().Fatalf(format, args...) }

// LogSubmission records a lead captured through one of the public forms.
func (l *Logger) LogSubmission(collection, recordID string, details map[string]interface{}) {
	l.with(details).with(map[string]interface{}{
		"collection": collection,
		"record_id":  recordID,
		"type":       "submission",
	}).Info("Submission recorded")
}

func (l *Logger) LogHTTPRequest(method, path string, statusCode int, duration time.Duration, requestID string) {
	fields := map[string]interface{}{
		"method":      method,
		"path":        path,
		"status_code": statusCode,
		"duration_ms": duration.Milliseconds(),
		"type":        "http_request",
	}
	if requestID != "" {
		fields["request_id"] = requestID
	}

	entry := l.with(fields)
	switch {
	case statusCode >= 500:
		entry.Error("HTTP request failed")
	case statusCode >= 400:
		entry.Warn("HTTP request rejected")
	default:
		entry.Info("HTTP request processed")
	}
}

func (l *Logger) SetOutput(output io.Writer) {
	l.logger.SetOutput(output)
}

func (l *Logger) SetLevel(level LogLevel) {
	l.logger.SetLevel(parseLevel(level))
}

// Writer exposes the logger at info level to libraries that only accept an io.Writer.
func (l *Logger) Writer() *io.PipeWriter {
	return l.entry().WriterLevel(logrus.InfoLevel)
}
