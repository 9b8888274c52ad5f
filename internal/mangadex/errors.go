package mangadex

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyResponse reports a fetched document with no body.
	ErrEmptyResponse = errors.New("mangadex: empty response body")

	// ErrMissingAssociation reports a chapter detail document that does
	// not name its parent series.
	ErrMissingAssociation = errors.New("mangadex: chapter detail has no manga_id")
)

// MalformedPayloadError reports a payload missing a substructure the
// parser cannot work without. Fatal for the current parse call only.
type MalformedPayloadError struct {
	Missing string
}

func (e *MalformedPayloadError) Error() string {
	return fmt.Sprintf("mangadex: malformed payload: missing %s", e.Missing)
}

// TransportError reports a non-success HTTP status from the source.
type TransportError struct {
	StatusCode int
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("mangadex: unexpected status code %d", e.StatusCode)
}
