package mangadex

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// DecodeSeries parses a raw series document from r. An empty or
// whitespace-only body yields ErrEmptyResponse.
func DecodeSeries(r io.Reader) (*SeriesPayload, error) {
	data, err := readBody(r)
	if err != nil {
		return nil, err
	}
	var payload SeriesPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decode series payload: %w", err)
	}
	return &payload, nil
}

// DecodeSeriesResponse checks the transport status before decoding the
// body, so callers fetching directly from the source surface
// TransportError instead of a JSON error on failure pages.
func DecodeSeriesResponse(resp *http.Response) (*SeriesPayload, error) {
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &TransportError{StatusCode: resp.StatusCode}
	}
	return DecodeSeries(resp.Body)
}

// AssociatedSeriesID extracts the parent series identifier from a
// chapter detail document.
func AssociatedSeriesID(r io.Reader) (int64, error) {
	data, err := readBody(r)
	if err != nil {
		return 0, err
	}
	var detail ChapterDetailPayload
	if err := json.Unmarshal(data, &detail); err != nil {
		return 0, fmt.Errorf("decode chapter detail: %w", err)
	}
	if detail.MangaID == nil {
		return 0, ErrMissingAssociation
	}
	return *detail.MangaID, nil
}

// DecodeCovers parses a covers listing into its URL list, preserving
// the source's order. Entries without a URL are skipped.
func DecodeCovers(r io.Reader) ([]string, error) {
	data, err := readBody(r)
	if err != nil {
		return nil, err
	}
	var payload CoversPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decode covers payload: %w", err)
	}
	urls := make([]string, 0, len(payload.Covers))
	for _, cover := range payload.Covers {
		if cover.URL != "" {
			urls = append(urls, cover.URL)
		}
	}
	return urls, nil
}

func readBody(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyResponse
	}
	return data, nil
}
