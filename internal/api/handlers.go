// A handler file for the normalization endpoints.

package api

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/example/dexnorm/internal/mangadex"
)

// SeriesRequest is the expected structure for series normalization.
// Payload carries the source's raw series document verbatim.
type SeriesRequest struct {
	RequestURL string          `json:"request_url"`
	CoverURLs  []string        `json:"cover_urls"`
	Payload    json.RawMessage `json:"payload"`
}

// ChaptersRequest is the expected structure for chapter list
// normalization. Languages, when present, override the configured set
// for this call only.
type ChaptersRequest struct {
	Languages []string        `json:"languages"`
	Payload   json.RawMessage `json:"payload"`
}

func (s *Server) handleNormalizeSeries(w http.ResponseWriter, r *http.Request) {
	var req SeriesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.RequestURL == "" {
		RespondWithError(w, http.StatusBadRequest, "request_url is required")
		return
	}
	if len(req.Payload) == 0 {
		RespondWithError(w, http.StatusBadRequest, "payload is required")
		return
	}

	payload, err := mangadex.DecodeSeries(bytes.NewReader(req.Payload))
	if err != nil {
		respondWithParseError(w, err)
		return
	}

	record, err := s.app.Parser.ExtractMetadata(req.RequestURL, payload, req.CoverURLs)
	if err != nil {
		respondWithParseError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, record)
}

func (s *Server) handleNormalizeChapters(w http.ResponseWriter, r *http.Request) {
	var req ChaptersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if len(req.Payload) == 0 {
		RespondWithError(w, http.StatusBadRequest, "payload is required")
		return
	}

	parser := s.app.Parser
	if len(req.Languages) > 0 {
		parser = mangadex.New(req.Languages)
	}

	payload, err := mangadex.DecodeSeries(bytes.NewReader(req.Payload))
	if err != nil {
		respondWithParseError(w, err)
		return
	}

	records, err := parser.BuildChapterList(payload)
	if err != nil {
		respondWithParseError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, records)
}

// handleAssociate resolves a chapter detail document to its parent
// series identifier. The request body is the source's document
// verbatim, no envelope.
func (s *Server) handleAssociate(w http.ResponseWriter, r *http.Request) {
	id, err := mangadex.AssociatedSeriesID(r.Body)
	if err != nil {
		respondWithParseError(w, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, map[string]int64{"series_id": id})
}

func (s *Server) handleGetVersion(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, map[string]string{"version": s.app.Version})
}

// respondWithParseError reports a failure from the decode or parse
// stage. The request envelope was already valid JSON at this point, so
// whatever the parser rejected is a fault of the supplied payload.
func respondWithParseError(w http.ResponseWriter, err error) {
	RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
}
