package utils

import (
	"strings"
	"unicode/utf8"

	"projectgen/internal/ai/prompts"
)

// ExtractCode returns the trimmed text between the first <code> and the first
// </code>. Indices count characters, not bytes. A missing marker counts as
// index -1 and the slice is taken with clamped, negative-from-end bounds, so a
// reply without markers yields a truncated copy of the reply rather than an error.
func ExtractCode(resp string) string {
	runes := []rune(resp)
	start := runeIndex(resp, prompts.CodeOpenTag) + utf8.RuneCountInString(prompts.CodeOpenTag)
	end := runeIndex(resp, prompts.CodeCloseTag)
	return strings.TrimSpace(string(sliceClamped(runes, start, end)))
}

// HasCodeMarkers reports whether ExtractCode will find a well-formed block,
// i.e. the first <code> comes before the first </code>.
func HasCodeMarkers(resp string) bool {
	start := strings.Index(resp, prompts.CodeOpenTag)
	end := strings.Index(resp, prompts.CodeCloseTag)
	return start >= 0 && end >= start+len(prompts.CodeOpenTag)
}

// runeIndex is strings.Index counted in runes, -1 when substr is absent.
func runeIndex(s, substr string) int {
	i := strings.Index(s, substr)
	if i < 0 {
		return -1
	}
	return utf8.RuneCountInString(s[:i])
}

// sliceClamped slices s[start:end] where negative indices count from the end
// and out-of-range bounds are clamped; an empty range gives nil.
func sliceClamped(s []rune, start, end int) []rune {
	n := len(s)
	clamp := func(i int) int {
		if i < 0 {
			i += n
			if i < 0 {
				return 0
			}
		}
		if i > n {
			return n
		}
		return i
	}
	start, end = clamp(start), clamp(end)
	if start >= end {
		return nil
	}
	return s[start:end]
}
