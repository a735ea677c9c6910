package repository

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"voiceorder/internal/model"

	"gopkg.in/natefinch/lumberjack.v2"
)

// InteractionSink is the append-only durable log of interactions and feedback
type InteractionSink interface {
	LogInteraction(ctx context.Context, rec model.InteractionRecord) error
	LogFeedback(ctx context.Context, rec model.FeedbackRecord) error
}

// SinkType names an interaction sink backend
type SinkType string

const (
	SinkTypeFile     SinkType = "file"
	SinkTypePostgres SinkType = "postgres"
	SinkTypeNone     SinkType = "none"
)

const (
	interactionLogFile = "interaction_logs.txt"
	feedbackLogFile    = "feedback_logs.txt"
	timestampLayout    = "2006-01-02 15:04:05"

	fileSinkMaxSizeMB  = 50
	fileSinkMaxBackups = 5
)

// FileSink appends one line per record to text files under a directory.
// Each file is a size-rotated lumberjack writer.
type FileSink struct {
	interactions *lumberjack.Logger
	feedback     *lumberjack.Logger
}

// NewFileSink creates a sink writing into dir. The directory is created on
// first write so a read-only deployment only fails when logging.
func NewFileSink(dir string) *FileSink {
	return &FileSink{
		interactions: newRotatingFile(filepath.Join(dir, interactionLogFile)),
		feedback:     newRotatingFile(filepath.Join(dir, feedbackLogFile)),
	}
}

func newRotatingFile(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    fileSinkMaxSizeMB,
		MaxBackups: fileSinkMaxBackups,
		LocalTime:  true,
	}
}

// LogInteraction implements InteractionSink
func (s *FileSink) LogInteraction(ctx context.Context, rec model.InteractionRecord) error {
	line := fmt.Sprintf("[%s] User: %s | Transcription: '%s' | Intent: %s | Sentiment: %s | Response: %s\n",
		rec.Timestamp.Format(timestampLayout), rec.UserID, rec.Transcription, rec.Intent, rec.Sentiment, rec.Response)
	return appendLine(s.interactions, line)
}

// LogFeedback implements InteractionSink
func (s *FileSink) LogFeedback(ctx context.Context, rec model.FeedbackRecord) error {
	line := fmt.Sprintf("[%s] User: %s | Feedback: '%s'\n", rec.Timestamp.Format(timestampLayout), rec.UserID, rec.Feedback)
	return appendLine(s.feedback, line)
}

// Close releases both log files
func (s *FileSink) Close() error {
	return errors.Join(s.interactions.Close(), s.feedback.Close())
}

// appendLine relies on lumberjack serializing whole Write calls
func appendLine(w *lumberjack.Logger, line string) error {
	if _, err := io.WriteString(w, line); err != nil {
		return fmt.Errorf("failed to append to %s: %w", w.Filename, err)
	}
	return nil
}

// NopSink discards every record
type NopSink struct{}

// LogInteraction implements InteractionSink
func (NopSink) LogInteraction(ctx context.Context, rec model.InteractionRecord) error { return nil }

// LogFeedback implements InteractionSink
func (NopSink) LogFeedback(ctx context.Context, rec model.FeedbackRecord) error { return nil }

// NewInteractionSink creates a sink of the given type. dir is used by the
// file sink; pg is required by the postgres sink.
func NewInteractionSink(sinkType SinkType, dir string, pg *PostgresRepository) (InteractionSink, error) {
	switch sinkType {
	case SinkTypeFile, "":
		return NewFileSink(dir), nil
	case SinkTypePostgres:
		if pg == nil {
			return nil, ErrInvalidConfig
		}
		return pg, nil
	case SinkTypeNone:
		return NopSink{}, nil
	default:
		return nil, ErrInvalidSinkType
	}
}
