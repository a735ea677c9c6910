package service

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultExitPhrases end a voice session when spoken on their own
var DefaultExitPhrases = []string{"exit", "quit", "goodbye", "bye"}

// VoiceLoop is the standalone listen, classify, speak cycle for one guest
type VoiceLoop struct {
	assistant   *Assistant
	transcriber Transcriber
	speaker     Speaker
	userID      string
	exitPhrases map[string]struct{}
}

// NewVoiceLoop creates a voice loop for a single guest
func NewVoiceLoop(assistant *Assistant, transcriber Transcriber, speaker Speaker, userID string, exitPhrases []string) *VoiceLoop {
	if exitPhrases == nil {
		exitPhrases = DefaultExitPhrases
	}
	exits := make(map[string]struct{}, len(exitPhrases))
	for _, p := range exitPhrases {
		exits[strings.ToLower(strings.TrimSpace(p))] = struct{}{}
	}
	return &VoiceLoop{
		assistant:   assistant,
		transcriber: transcriber,
		speaker:     speaker,
		userID:      userID,
		exitPhrases: exits,
	}
}

// Run processes utterances until input ends, an exit phrase is heard or ctx
// is cancelled. It returns the number of utterances answered.
func (l *VoiceLoop) Run(ctx context.Context) (int, error) {
	defer l.assistant.Wait()

	handled := 0
	for {
		text, err := RecordAndTranscribe(ctx, l.transcriber)
		if errors.Is(err, io.EOF) {
			return handled, nil
		}
		if err != nil {
			return handled, err
		}

		if _, ok := l.exitPhrases[strings.ToLower(strings.Trim(text, " .!"))]; ok {
			logrus.WithField("user_id", l.userID).Info("Voice session ended by guest")
			return handled, nil
		}

		reply, err := l.assistant.Handle(ctx, l.userID, text)
		if err != nil {
			return handled, err
		}
		logrus.WithFields(logrus.Fields{
			"transcription": text,
			"intent":        reply.Result.Label,
		}).Debug("Voice utterance classified")

		if err := l.speaker.Speak(ctx, reply.Response); err != nil {
			logrus.WithError(err).Warn("Failed to speak reply")
		}
		handled++
	}
}
