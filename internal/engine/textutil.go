package engine

import (
	"strings"

	"github.com/anatolykoptev/go-kit/strutil"
)

// TruncateRunes caps s at limit runes, appending suffix if truncated.
// Pass suffix="" for no suffix. Safe for UTF-8.
func TruncateRunes(s string, limit int, suffix string) string {
	return strutil.TruncateWith(s, limit, suffix)
}

// TruncateAtWord truncates a string to maxLen runes at a word boundary.
func TruncateAtWord(s string, maxLen int) string {
	return strutil.TruncateAtWord(s, maxLen)
}

// PostingTitle derives a short label for a posting: the explicit title if
// known, else the first non-empty line of the text, stripped of markdown heading marks.
func PostingTitle(title, text string) string {
	if t := strings.TrimSpace(title); t != "" {
		return TruncateAtWord(t, 120)
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "#* "))
		if line != "" {
			return TruncateAtWord(line, 120)
		}
	}
	return ""
}
