// Package mangadex normalizes the source's raw API payloads into the
// canonical series and chapter records the rest of the system consumes.
// Parsing is pure: every call builds fresh records from its inputs and
// no state is shared between calls.
package mangadex

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/example/dexnorm/internal/models"
	"github.com/example/dexnorm/internal/textutil"
)

// API path prefixes for canonical record URLs.
const (
	seriesPathPrefix  = "/api/manga/"
	chapterPathPrefix = "/api/chapter/"
)

// Parser turns raw source payloads into normalized records. It is
// stateless beyond its configuration and safe for concurrent use.
type Parser struct {
	languages    *LanguageFilter
	tags         TagResolver
	demographics DemographicResolver
}

// Option configures a Parser.
type Option func(*Parser)

// WithTagResolver replaces the built-in tag vocabulary.
func WithTagResolver(r TagResolver) Option {
	return func(p *Parser) { p.tags = r }
}

// WithDemographicResolver replaces the built-in demographic table.
func WithDemographicResolver(r DemographicResolver) Option {
	return func(p *Parser) { p.demographics = r }
}

// New creates a parser that keeps chapters in the given languages.
func New(languages []string, opts ...Option) *Parser {
	p := &Parser{
		languages:    NewLanguageFilter(languages),
		tags:         DefaultTagResolver,
		demographics: DefaultDemographicResolver,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ExtractMetadata builds the normalized series record from a raw series
// payload. requestURL is the URL the payload was fetched from; the
// series identifier and canonical URL derive from it, never from payload
// content. coverURLs is the series' cover listing, newest last.
func (p *Parser) ExtractMetadata(requestURL string, payload *SeriesPayload, coverURLs []string) (*models.SeriesMetadata, error) {
	if payload == nil || payload.Manga == nil {
		return nil, &MalformedPayloadError{Missing: "manga"}
	}
	manga := payload.Manga
	if manga.Publication == nil {
		return nil, &MalformedPayloadError{Missing: "manga.publication"}
	}

	record := models.DefaultSeriesMetadata()
	record.Identifier = seriesIdentifier(requestURL)
	record.URL = seriesPathPrefix + record.Identifier
	record.Title = textutil.Clean(manga.Title)
	record.Description = textutil.CleanDescription(manga.Description)
	record.Author = textutil.Clean(strings.Join(manga.Author, ", "))
	record.Artist = textutil.Clean(strings.Join(manga.Artist, ", "))
	record.Language = manga.Publication.Language

	if len(coverURLs) > 0 {
		record.ThumbnailURL = coverURLs[len(coverURLs)-1]
	} else {
		record.ThumbnailURL = manga.MainCover
	}

	if number, err := strconv.ParseFloat(manga.LastChapter, 64); err == nil {
		floored := math.Floor(number)
		record.LastChapter = &floored
	}

	if rating := manga.Rating; rating != nil {
		if value := rating.Bayesian; value != nil {
			v := *value
			record.Rating = &v
		} else if value := rating.Mean; value != nil {
			v := *value
			record.Rating = &v
		}
		record.RatingUsers = rating.Users
	}

	if links := manga.Links; links != nil {
		if links.AniList != nil {
			record.AniListID = *links.AniList
		}
		if links.Kitsu != nil {
			record.KitsuID = *links.Kitsu
		}
		if links.MyAnimeList != nil {
			record.MyAnimeListID = *links.MyAnimeList
		}
		if links.MangaUpdates != nil {
			record.MangaUpdatesID = *links.MangaUpdates
		}
		if links.AnimePlanet != nil {
			record.AnimePlanetID = *links.AnimePlanet
		}
	}

	record.Genres = p.buildGenres(manga)

	record.Status = publicationStatus(manga.Publication.Status)
	filtered := p.filterChapters(payload.Chapters)
	if missing := missingChapterCount(filtered); missing > 0 {
		record.MissingChapters = &missing
	}
	if record.Status == models.StatusPublicationComplete || record.Status == models.StatusCancelled {
		if isSeriesComplete(manga, filtered) {
			record.Status = models.StatusCompleted
			record.MissingChapters = nil
		}
	}

	return record, nil
}

// buildGenres resolves the payload's tag identifiers into a fresh genre
// list: resolved demographic first, then tags in payload order, then a
// synthesized adult-content entry.
func (p *Parser) buildGenres(manga *MangaData) []string {
	genres := make([]string, 0, len(manga.Tags)+2)
	for _, id := range manga.Tags {
		if name, ok := p.tags(id); ok {
			genres = append(genres, name)
		}
	}
	if name, ok := p.demographics(manga.Publication.Demographic); ok {
		genres = append([]string{name}, genres...)
	}
	if manga.IsHentai {
		genres = append(genres, "Hentai")
	}
	return genres
}

// filterChapters applies the language and future-release filters,
// preserving input order. A single clock reading covers the whole pass
// so one call sees one consistent "now".
func (p *Parser) filterChapters(chapters []ChapterEntry) []ChapterEntry {
	now := time.Now().UnixMilli()
	filtered := make([]ChapterEntry, 0, len(chapters))
	for _, ch := range chapters {
		if !p.languages.Accepts(ch.Language) {
			continue
		}
		if ch.Timestamp*1000 > now {
			continue
		}
		filtered = append(filtered, ch)
	}
	return filtered
}

// publicationStatus maps the source's integer status code onto the
// domain enum.
func publicationStatus(code int) models.PublicationStatus {
	switch code {
	case rawStatusOngoing:
		return models.StatusOngoing
	case rawStatusCompleted:
		return models.StatusPublicationComplete
	case rawStatusCancelled:
		return models.StatusCancelled
	case rawStatusHiatus:
		return models.StatusHiatus
	default:
		return models.StatusUnknown
	}
}

// seriesIdentifier pulls the numeric series identifier out of the URL
// the payload was fetched from. Older URLs carry a trailing title slug;
// the identifier then sits one segment earlier.
func seriesIdentifier(requestURL string) string {
	segments := strings.Split(strings.TrimRight(requestURL, "/"), "/")
	last := segments[len(segments)-1]
	if _, err := strconv.Atoi(last); err == nil || len(segments) < 2 {
		return last
	}
	return segments[len(segments)-2]
}
