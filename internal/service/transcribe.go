package service

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

const (
	// UnintelligiblePlaceholder replaces a transcript the recognizer could not make out
	UnintelligiblePlaceholder = "Could not understand audio."
	// RecognizerUnavailablePlaceholder replaces a transcript when the recognizer service failed
	RecognizerUnavailablePlaceholder = "Could not request results from the speech recognition service."
)

// Transcriber is the speech-to-text collaborator of the voice loop
type Transcriber interface {
	// Transcribe blocks until the next utterance is available. io.EOF means
	// the input has ended.
	Transcribe(ctx context.Context) (string, error)
}

type scannedLine struct {
	text string
	err  error
}

// LineTranscriber treats each line of a reader as one transcribed utterance.
// It stands in for a microphone plus speech recognizer.
//
// Lines are read by a single background goroutine so Transcribe can return
// as soon as its context is done. A line read after cancellation is kept for
// the next call. The goroutine lives until the reader returns EOF or an error.
type LineTranscriber struct {
	r     io.Reader
	once  sync.Once
	lines chan scannedLine
}

// NewLineTranscriber creates a transcriber over r
func NewLineTranscriber(r io.Reader) *LineTranscriber {
	return &LineTranscriber{r: r, lines: make(chan scannedLine)}
}

func (t *LineTranscriber) scan() {
	defer close(t.lines)
	scanner := bufio.NewScanner(t.r)
	for scanner.Scan() {
		t.lines <- scannedLine{text: scanner.Text()}
	}
	if err := scanner.Err(); err != nil {
		t.lines <- scannedLine{err: fmt.Errorf("read transcript: %w", err)}
	}
}

// Transcribe implements Transcriber. A blank line counts as unintelligible audio.
func (t *LineTranscriber) Transcribe(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	t.once.Do(func() { go t.scan() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-t.lines:
		if !ok {
			return "", io.EOF
		}
		if line.err != nil {
			return "", line.err
		}
		text := strings.TrimSpace(line.text)
		if text == "" {
			return "", ErrUnintelligible
		}
		return text, nil
	}
}

// RecordAndTranscribe returns the next utterance, replacing any transcription
// failure with a placeholder text. End of input and context cancellation
// are still reported so the caller can stop.
func RecordAndTranscribe(ctx context.Context, t Transcriber) (string, error) {
	text, err := t.Transcribe(ctx)
	switch {
	case err == nil:
		return text, nil
	case errors.Is(err, io.EOF), errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "", err
	case errors.Is(err, ErrRecognizerUnavailable):
		return RecognizerUnavailablePlaceholder, nil
	default:
		return UnintelligiblePlaceholder, nil
	}
}
