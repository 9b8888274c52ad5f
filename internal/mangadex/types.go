package mangadex

// --- Series Payload Types ---

// SeriesPayload is the raw document served by the source's series
// endpoint: one manga object plus its full chapter and group listings.
type SeriesPayload struct {
	Manga    *MangaData     `json:"manga"`
	Chapters []ChapterEntry `json:"chapters"`
	Groups   []GroupEntry   `json:"groups"`
}

type MangaData struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	MainCover   string       `json:"mainCover"`
	Author      []string     `json:"author"`
	Artist      []string     `json:"artist"`
	Publication *Publication `json:"publication"`
	LastChapter string       `json:"lastChapter"`
	Rating      *Rating      `json:"rating"`
	Links       *Links       `json:"links"`
	Tags        []int        `json:"tags"`
	IsHentai    bool         `json:"isHentai"`
}

type Publication struct {
	Language    string `json:"language"`
	Status      int    `json:"status"`
	Demographic int    `json:"demographic"`
}

// Publication status codes as reported by the source.
const (
	rawStatusOngoing   = 1
	rawStatusCompleted = 2
	rawStatusCancelled = 3
	rawStatusHiatus    = 4
)

type Rating struct {
	Bayesian *float64 `json:"bayesian"`
	Mean     *float64 `json:"mean"`
	Users    int      `json:"users"`
}

// Links holds the source's cross-references to external tracking
// services, keyed by the source's two-letter service codes.
type Links struct {
	AniList      *string `json:"al"`
	Kitsu        *string `json:"kt"`
	MyAnimeList  *string `json:"mal"`
	MangaUpdates *string `json:"mu"`
	AnimePlanet  *string `json:"ap"`
}

// --- Chapter Types ---

type ChapterEntry struct {
	ID        int64   `json:"id"`
	Volume    string  `json:"volume"`
	Chapter   string  `json:"chapter"`
	Title     string  `json:"title"`
	Timestamp int64   `json:"timestamp"` // unix seconds
	Language  string  `json:"language"`
	Groups    []int64 `json:"groups"`
}

type GroupEntry struct {
	ID   int64   `json:"id"`
	Name *string `json:"name"`
}

// --- Association Types ---

// ChapterDetailPayload is the slice of a chapter detail document needed
// to associate a chapter with its parent series.
type ChapterDetailPayload struct {
	MangaID *int64 `json:"manga_id"`
}

// --- Cover Types ---

type CoversPayload struct {
	Covers []CoverEntry `json:"covers"`
}

type CoverEntry struct {
	Volume string `json:"volume"`
	URL    string `json:"url"`
}
