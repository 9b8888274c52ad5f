package mangadex

import (
	"math"
	"strconv"
	"strings"
)

// oneshotFinalLabels are final-chapter labels the source reports for
// works finished in a single release. Numeric labels never belong here;
// a label of "0" means the final chapter is simply unknown.
var oneshotFinalLabels = map[string]struct{}{
	"none": {},
}

func isOneshotFinalLabel(label string) bool {
	_, ok := oneshotFinalLabels[strings.ToLower(label)]
	return ok
}

// isOneshot reports whether a chapter is a single-release work: either
// its title says so outright, or it carries no usable chapter number
// while the series' final-chapter label marks a single release.
func isOneshot(ch ChapterEntry, finalLabel string) bool {
	if strings.EqualFold(ch.Title, "oneshot") {
		return true
	}
	return (ch.Chapter == "" || ch.Chapter == "0") && isOneshotFinalLabel(finalLabel)
}

// isSeriesComplete decides whether a series the source reports as
// finished really has all of its chapters present. The acceptance
// heuristic: the count of distinct chapter numbers seen must equal the
// source's own final chapter number, with an early exit for true
// one-shots.
func isSeriesComplete(manga *MangaData, filtered []ChapterEntry) bool {
	finalLabel := manga.LastChapter
	if len(filtered) == 0 || finalLabel == "" {
		return false
	}

	if isOneshotFinalLabel(finalLabel) && isOneshot(firstByTimestamp(filtered), finalLabel) {
		return true
	}

	finalNumber, err := strconv.ParseFloat(finalLabel, 64)
	if err != nil || math.Floor(finalNumber) == 0 {
		return false
	}

	seen := make(map[float64]struct{})
	for _, ch := range filtered {
		number, err := strconv.ParseFloat(ch.Chapter, 64)
		if err != nil {
			continue
		}
		floored := math.Floor(number)
		if floored == 0 {
			continue
		}
		seen[floored] = struct{}{}
	}
	return float64(len(seen)) == math.Floor(finalNumber)
}

// firstByTimestamp returns the chronologically earliest entry, keeping
// input order on ties.
func firstByTimestamp(chapters []ChapterEntry) ChapterEntry {
	first := chapters[0]
	for _, ch := range chapters[1:] {
		if ch.Timestamp < first.Timestamp {
			first = ch
		}
	}
	return first
}

// missingChapterCount estimates how many chapters are absent from the
// filtered list: the gap between the highest chapter number seen and
// the count of distinct chapter numbers present.
func missingChapterCount(filtered []ChapterEntry) int {
	seen := make(map[float64]struct{})
	highest := 0.0
	for _, ch := range filtered {
		number, err := strconv.ParseFloat(ch.Chapter, 64)
		if err != nil {
			continue
		}
		floored := math.Floor(number)
		if floored <= 0 {
			continue
		}
		seen[floored] = struct{}{}
		if floored > highest {
			highest = floored
		}
	}
	missing := int(highest) - len(seen)
	if missing < 0 {
		return 0
	}
	return missing
}
