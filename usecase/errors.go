package usecase

import "errors"

var (
	// ErrUnknownSessionType is returned for one-tap requests naming a
	// session type that has no fixed script.
	ErrUnknownSessionType = errors.New("unknown session type")

	// ErrInvalidStepIndex is returned for step requests outside the
	// script's step range.
	ErrInvalidStepIndex = errors.New("invalid step index")

	// ErrNoFallbackAudio is returned when synthesis failed and the audio
	// store holds nothing to degrade to.
	ErrNoFallbackAudio = errors.New("audio synthesis failed and no fallback audio is available")

	// ErrSynthesisFailed is returned by the uncached generation endpoint,
	// which has no fallback.
	ErrSynthesisFailed = errors.New("audio synthesis failed")
)
