package textutil

import (
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DisplayTitle derives a human-readable title from a torrent's info.name.
// The extension is stripped, separator runs collapse to single spaces, and
// the result is title-cased. Names that clean down to nothing become
// "Unknown Torrent".
func DisplayTitle(name []byte) string {
	base := string(name)
	if base == "" {
		return "Unknown Torrent"
	}
	base = strings.TrimSuffix(base, filepath.Ext(base))
	cleaned := strings.Builder{}
	prevSpace := false
	for _, r := range base {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			cleaned.WriteRune(r)
			prevSpace = false
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '.':
			if !prevSpace {
				cleaned.WriteRune(' ')
				prevSpace = true
			}
		}
	}
	title := strings.TrimSpace(cleaned.String())
	if title == "" {
		return "Unknown Torrent"
	}
	return cases.Title(language.Und).String(title)
}
