package service

import "errors"

var (
	// ErrEmptyUtterance is returned when a request carries no text to classify
	ErrEmptyUtterance = errors.New("no input provided")

	// ErrFAQUnavailable means the FAQ corpus could not be built; the matcher
	// stays inert for the lifetime of the process
	ErrFAQUnavailable = errors.New("faq matcher unavailable")

	// ErrUnknownMatchMode is returned for a FAQ match mode other than token_set or ratio
	ErrUnknownMatchMode = errors.New("unknown faq match mode")

	// ErrUnintelligible is returned by a transcriber that heard nothing usable
	ErrUnintelligible = errors.New("could not understand audio")

	// ErrRecognizerUnavailable is returned by a transcriber whose speech
	// recognition backend could not be reached
	ErrRecognizerUnavailable = errors.New("speech recognition service unavailable")

	// ErrSentimentDisabled is returned when no sentiment backend is configured
	ErrSentimentDisabled = errors.New("sentiment analysis is not enabled")
)
