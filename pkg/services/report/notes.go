package report

import (
	"regexp"
	"strings"
)

var (
	noteEdges = regexp.MustCompile(`^[\s,]+|[\s,]+$`)
	spaceRuns = regexp.MustCompile(` +`)
)

// FilterNotes cleans and deduplicates the rendered notes of one group. It
// runs once per (day, project) bucket after folding, so duplicates merge
// across entries rather than just within one. Steps, in order: trim
// whitespace and commas from both ends, hyphenate space runs inside tags,
// drop empties, dedupe preserving first occurrence. Idempotent.
func FilterNotes(notes []string) []string {
	seen := make(map[string]struct{}, len(notes))
	filtered := make([]string, 0, len(notes))

	for _, note := range notes {
		note = noteEdges.ReplaceAllString(note, "")
		if strings.HasPrefix(note, "#") {
			note = spaceRuns.ReplaceAllString(note, "-")
		}
		if note == "" {
			continue
		}
		if _, dup := seen[note]; dup {
			continue
		}
		seen[note] = struct{}{}
		filtered = append(filtered, note)
	}

	return filtered
}
