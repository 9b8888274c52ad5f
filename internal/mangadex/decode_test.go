package mangadex

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seriesDocument = `{
	"manga": {
		"title": "Decode Probe",
		"description": "A series for decode tests.",
		"mainCover": "https://example.com/covers/7/main.jpg",
		"author": ["Solo Author"],
		"artist": ["Solo Artist"],
		"publication": {"language": "en", "status": 1, "demographic": 3},
		"lastChapter": "2",
		"rating": {"bayesian": 7.11, "mean": 7.42, "users": 88},
		"links": {"mu": "abc"},
		"tags": [8],
		"isHentai": false
	},
	"chapters": [
		{"id": 101, "volume": "1", "chapter": "1", "title": "Start", "timestamp": 1600000000, "language": "en", "groups": [4]},
		{"id": 102, "chapter": "2", "timestamp": 1600086400, "language": "en", "groups": [4]}
	],
	"groups": [{"id": 4, "name": "Decode Scans"}]
}`

func TestDecodeSeries(t *testing.T) {
	payload, err := DecodeSeries(strings.NewReader(seriesDocument))
	require.NoError(t, err)
	require.NotNil(t, payload.Manga)

	assert.Equal(t, "Decode Probe", payload.Manga.Title)
	require.NotNil(t, payload.Manga.Publication)
	assert.Equal(t, 1, payload.Manga.Publication.Status)
	assert.Equal(t, 3, payload.Manga.Publication.Demographic)
	require.NotNil(t, payload.Manga.Links)
	require.NotNil(t, payload.Manga.Links.MangaUpdates)
	assert.Equal(t, "abc", *payload.Manga.Links.MangaUpdates)

	require.Len(t, payload.Chapters, 2)
	assert.Equal(t, int64(101), payload.Chapters[0].ID)
	assert.Equal(t, int64(1600000000), payload.Chapters[0].Timestamp)
	assert.Equal(t, []int64{4}, payload.Chapters[0].Groups)

	require.Len(t, payload.Groups, 1)
	require.NotNil(t, payload.Groups[0].Name)
	assert.Equal(t, "Decode Scans", *payload.Groups[0].Name)
}

func TestDecodeSeriesDistinguishesAbsentFromEmptyChapters(t *testing.T) {
	withEmpty, err := DecodeSeries(strings.NewReader(`{"manga": {"publication": {"language": "en", "status": 1}}, "chapters": []}`))
	require.NoError(t, err)
	assert.NotNil(t, withEmpty.Chapters)

	withoutKey, err := DecodeSeries(strings.NewReader(`{"manga": {"publication": {"language": "en", "status": 1}}}`))
	require.NoError(t, err)
	assert.Nil(t, withoutKey.Chapters)
}

func TestDecodeSeriesEmptyBody(t *testing.T) {
	_, err := DecodeSeries(strings.NewReader("   \n"))
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestDecodeSeriesInvalidJSON(t *testing.T) {
	_, err := DecodeSeries(strings.NewReader("{not json"))
	assert.Error(t, err)
}

func TestDecodeSeriesResponse(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/manga/7", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, seriesDocument)
	})
	mux.HandleFunc("/api/manga/404", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	t.Run("success", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/api/manga/7")
		require.NoError(t, err)
		defer resp.Body.Close()

		payload, err := DecodeSeriesResponse(resp)
		require.NoError(t, err)
		assert.Equal(t, "Decode Probe", payload.Manga.Title)
	})

	t.Run("transport failure", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/api/manga/404")
		require.NoError(t, err)
		defer resp.Body.Close()

		_, err = DecodeSeriesResponse(resp)
		var transport *TransportError
		require.ErrorAs(t, err, &transport)
		assert.Equal(t, http.StatusNotFound, transport.StatusCode)
	})
}

func TestAssociatedSeriesID(t *testing.T) {
	id, err := AssociatedSeriesID(strings.NewReader(`{"id": 900, "manga_id": 42}`))
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestAssociatedSeriesIDMissing(t *testing.T) {
	_, err := AssociatedSeriesID(strings.NewReader(`{"id": 900}`))
	assert.ErrorIs(t, err, ErrMissingAssociation)
}

func TestAssociatedSeriesIDEmptyBody(t *testing.T) {
	_, err := AssociatedSeriesID(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestDecodeCovers(t *testing.T) {
	document := `{"covers": [
		{"volume": "1", "url": "https://example.com/covers/7/vol1.jpg"},
		{"volume": "2", "url": "https://example.com/covers/7/vol2.jpg"},
		{"volume": "3", "url": ""}
	]}`

	urls, err := DecodeCovers(strings.NewReader(document))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://example.com/covers/7/vol1.jpg",
		"https://example.com/covers/7/vol2.jpg",
	}, urls)
}
