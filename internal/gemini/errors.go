package gemini

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured means GOOGLE_API_KEY was absent at startup. Every task
	// fails closed with it before any outbound call is attempted.
	ErrNotConfigured = errors.New("gemini API key is not configured")

	// ErrInvalidResponse means the upstream reply carried no candidates/text.
	ErrInvalidResponse = errors.New("invalid response from the AI service")

	// ErrMalformedJSON means structured output was requested but the generated
	// text did not parse as JSON.
	ErrMalformedJSON = errors.New("failed to parse model JSON response")
)

// UpstreamError carries an HTTP failure from the Gemini API so the handler can
// forward the upstream status code and raw error body to the client.
type UpstreamError struct {
	Code    int
	Details string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("gemini API error: HTTP %d: %s", e.Code, e.Details)
}
