package domain

import (
	"fmt"
	"sort"
	"strings"
)

// LanguageStats maps a language name to the number of bytes written in it.
type LanguageStats map[string]int

// Merge adds the byte counts of another language map into this one.
func (l LanguageStats) Merge(other map[string]int) {
	for lang, bytes := range other {
		l[lang] += bytes
	}
}

// TotalBytes returns the sum of all byte counts.
func (l LanguageStats) TotalBytes() int {
	total := 0
	for _, bytes := range l {
		total += bytes
	}
	return total
}

// Format returns a human-readable summary of language usage, largest first.
// A non-negative max caps the number of languages listed; -1 keeps all.
// An empty map renders as the empty string.
func (l LanguageStats) Format(max int) string {
	type entry struct {
		lang  string
		bytes int
	}
	entries := make([]entry, 0, len(l))
	for lang, bytes := range l {
		entries = append(entries, entry{lang, bytes})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].bytes != entries[j].bytes {
			return entries[i].bytes > entries[j].bytes
		}
		return entries[i].lang < entries[j].lang
	})
	if max >= 0 && len(entries) > max {
		entries = entries[:max]
	}
	if len(entries) == 0 {
		return ""
	}

	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "\n- %s: %d bytes of code", e.lang, e.bytes)
	}
	return b.String()
}
