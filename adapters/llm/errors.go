package llm

import "fmt"

// ErrProviderUnavailable indicates the text provider is down, unreachable,
// or returned a non-success response. Call sites treat it as the trigger
// for static fallback content.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("text provider unavailable: %v", e.Err)
	}
	return "text provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrEmptyResponse indicates the provider answered but produced no usable
// text. Treated identically to unavailability by callers.
type ErrEmptyResponse struct{}

func (e *ErrEmptyResponse) Error() string {
	return "text provider returned an empty response"
}
