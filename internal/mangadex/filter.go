package mangadex

// LanguageFilter retains chapters whose language code belongs to a
// configured set. Matching is exact; no case or script normalization is
// applied to either side.
type LanguageFilter struct {
	codes map[string]struct{}
}

// NewLanguageFilter builds a filter accepting the given language codes.
func NewLanguageFilter(codes []string) *LanguageFilter {
	f := &LanguageFilter{codes: make(map[string]struct{}, len(codes))}
	for _, code := range codes {
		f.codes[code] = struct{}{}
	}
	return f
}

// Accepts reports whether a record in the given language passes.
func (f *LanguageFilter) Accepts(language string) bool {
	_, ok := f.codes[language]
	return ok
}
