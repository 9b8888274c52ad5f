// This file defines the canonical series record produced by the
// normalization engine. It is an immutable value record handed to the
// aggregation client's persistence layer, which may merge it into
// longer-lived storage.

package models

import (
	"encoding/json"
	"fmt"
)

// PublicationStatus is the normalized publication state of a series.
type PublicationStatus int

const (
	StatusUnknown PublicationStatus = iota
	StatusOngoing
	StatusPublicationComplete
	StatusCancelled
	StatusHiatus
	// StatusCompleted is a terminal refinement of PublicationComplete or
	// Cancelled, assigned only when chapter coverage confirms the series
	// really is finished. No source status code maps to it directly.
	StatusCompleted
)

var statusNames = map[PublicationStatus]string{
	StatusUnknown:             "unknown",
	StatusOngoing:             "ongoing",
	StatusPublicationComplete: "publication_complete",
	StatusCancelled:           "cancelled",
	StatusHiatus:              "hiatus",
	StatusCompleted:           "completed",
}

func (s PublicationStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("publication_status(%d)", int(s))
}

// MarshalJSON renders the status as its lowercase name so downstream
// consumers never have to know the enum ordering.
func (s PublicationStatus) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON accepts the name form produced by MarshalJSON.
// Unrecognized names map to StatusUnknown.
func (s *PublicationStatus) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for status, statusName := range statusNames {
		if statusName == name {
			*s = status
			return nil
		}
	}
	*s = StatusUnknown
	return nil
}

// SeriesMetadata is the normalized metadata for a single series.
type SeriesMetadata struct {
	Identifier   string `json:"identifier"`
	URL          string `json:"url"`
	Title        string `json:"title"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	Description  string `json:"description,omitempty"`
	Author       string `json:"author,omitempty"`
	Artist       string `json:"artist,omitempty"`
	Language     string `json:"language,omitempty"`

	// LastChapter is the source's own "last chapter" number, floored.
	// Nil when the source did not report one or it did not parse.
	LastChapter *float64 `json:"last_chapter,omitempty"`

	// Rating is the bayesian rating when the source provides one, the
	// plain mean otherwise. Nil when neither is present.
	Rating      *float64 `json:"rating,omitempty"`
	RatingUsers int      `json:"rating_users,omitempty"`

	// Cross-reference identifiers on external tracking services, copied
	// through verbatim when the payload carries them.
	AniListID      string `json:"anilist_id,omitempty"`
	KitsuID        string `json:"kitsu_id,omitempty"`
	MyAnimeListID  string `json:"my_anime_list_id,omitempty"`
	MangaUpdatesID string `json:"manga_updates_id,omitempty"`
	AnimePlanetID  string `json:"anime_planet_id,omitempty"`

	Status PublicationStatus `json:"status"`
	Genres []string          `json:"genres"`

	// MissingChapters counts chapter numbers that appear to be absent
	// from the source's own numbering. Nil when nothing is missing or
	// the series has been inferred complete.
	MissingChapters *int `json:"missing_chapters,omitempty"`
}

// DefaultSeriesMetadata returns a fully-initialized empty record, the
// starting point for every extraction before payload fields are merged in.
func DefaultSeriesMetadata() *SeriesMetadata {
	return &SeriesMetadata{
		Status: StatusUnknown,
		Genres: []string{},
	}
}
