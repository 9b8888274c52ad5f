package mangadex

import (
	"strconv"
	"strings"

	"github.com/example/dexnorm/internal/models"
	"github.com/example/dexnorm/internal/textutil"
)

// BuildChapterList converts the payload's raw chapter listing into
// ordered chapter records. Chapters outside the accepted languages and
// chapters whose release time is still in the future are dropped; input
// order is preserved for the rest.
func (p *Parser) BuildChapterList(payload *SeriesPayload) ([]*models.ChapterRecord, error) {
	if payload == nil || payload.Manga == nil {
		return nil, &MalformedPayloadError{Missing: "manga"}
	}
	if payload.Manga.Publication == nil {
		return nil, &MalformedPayloadError{Missing: "manga.publication"}
	}
	if payload.Chapters == nil {
		return nil, &MalformedPayloadError{Missing: "chapters"}
	}

	groupNames := groupNameIndex(payload.Groups)
	status := payload.Manga.Publication.Status
	finalLabel := payload.Manga.LastChapter
	markTerminal := (status == rawStatusCompleted || status == rawStatusCancelled) && finalLabel != ""
	totalChapters := len(payload.Chapters)

	filtered := p.filterChapters(payload.Chapters)
	records := make([]*models.ChapterRecord, 0, len(filtered))
	for _, ch := range filtered {
		records = append(records, &models.ChapterRecord{
			URL:        chapterPathPrefix + strconv.FormatInt(ch.ID, 10),
			Name:       chapterDisplayName(ch, markTerminal, finalLabel, totalChapters),
			UploadedAt: ch.Timestamp * 1000,
			Scanlator:  scanlatorFor(ch, groupNames),
		})
	}
	return records, nil
}

// chapterDisplayName composes a record's display name from the volume
// and chapter labels plus the title, falling back to "Oneshot" when all
// three are blank.
func chapterDisplayName(ch ChapterEntry, markTerminal bool, finalLabel string, totalChapters int) string {
	var parts []string
	if strings.TrimSpace(ch.Volume) != "" {
		parts = append(parts, "Vol."+ch.Volume)
	}
	if strings.TrimSpace(ch.Chapter) != "" {
		parts = append(parts, "Ch."+ch.Chapter)
	}
	if strings.TrimSpace(ch.Title) != "" {
		if len(parts) > 0 {
			parts = append(parts, "-")
		}
		parts = append(parts, ch.Title)
	}
	if len(parts) == 0 {
		parts = append(parts, "Oneshot")
	}
	if markTerminal && isTerminalChapter(ch, finalLabel, totalChapters) {
		parts = append(parts, "[END]")
	}
	return strings.Join(parts, " ")
}

// isTerminalChapter reports whether a chapter closes the series: the
// lone chapter of a oneshot, or the chapter whose label matches the
// source's final-chapter label.
func isTerminalChapter(ch ChapterEntry, finalLabel string, totalChapters int) bool {
	if isOneshot(ch, finalLabel) && totalChapters == 1 {
		return true
	}
	if ch.Chapter != finalLabel {
		return false
	}
	n, err := strconv.Atoi(finalLabel)
	return err != nil || n != 0
}

// groupNameIndex maps group identifiers to display names, dropping
// entries the source reported without one.
func groupNameIndex(groups []GroupEntry) map[int64]string {
	index := make(map[int64]string, len(groups))
	for _, g := range groups {
		if g.Name == nil {
			continue
		}
		index[g.ID] = *g.Name
	}
	return index
}

func scanlatorFor(ch ChapterEntry, groupNames map[int64]string) string {
	names := make([]string, 0, len(ch.Groups))
	for _, id := range ch.Groups {
		if name, ok := groupNames[id]; ok {
			names = append(names, name)
		}
	}
	return textutil.JoinScanlators(names)
}
