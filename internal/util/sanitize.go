package util

import "regexp"

var disallowedFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9_.-]`)

// SanitizeFilenameWord cleans a single word for use in a filename.
// It replaces disallowed characters and truncates if necessary.
func SanitizeFilenameWord(word string) string {
	sanitized := disallowedFilenameChars.ReplaceAllString(word, "_")
	const maxLen = 28
	if len(sanitized) > maxLen {
		return sanitized[:maxLen]
	}
	return sanitized
}
