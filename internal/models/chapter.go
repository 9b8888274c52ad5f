package models

// ChapterRecord is a single normalized chapter of a series.
type ChapterRecord struct {
	// URL is the fixed chapter API path prefix plus the raw identifier.
	URL string `json:"url"`

	// Name is the composed display name, e.g. "Vol.2 Ch.13 - Homecoming".
	// It is never empty; a chapter with no volume, number or title is
	// named "Oneshot".
	Name string `json:"name"`

	// UploadedAt is the upload time as a millisecond epoch.
	UploadedAt int64 `json:"uploaded_at"`

	// Scanlator is the attribution string for the groups that released
	// the chapter, joined in sorted order.
	Scanlator string `json:"scanlator,omitempty"`
}
