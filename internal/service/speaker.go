package service

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// Speaker is the text-to-speech collaborator of the voice loop
type Speaker interface {
	Speak(ctx context.Context, text string) error
}

// WriterSpeaker "speaks" by writing each reply as a line to w
type WriterSpeaker struct {
	mu     sync.Mutex
	w      io.Writer
	prefix string
}

// NewWriterSpeaker creates a speaker that prefixes every line with prefix
func NewWriterSpeaker(w io.Writer, prefix string) *WriterSpeaker {
	return &WriterSpeaker{w: w, prefix: prefix}
}

// Speak implements Speaker
func (s *WriterSpeaker) Speak(ctx context.Context, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := fmt.Fprintf(s.w, "%s%s\n", s.prefix, text); err != nil {
		return fmt.Errorf("speak: %w", err)
	}
	return nil
}
