// Package textpos converts byte offsets within a line to rune offsets.
// Regex matches and string searches produce byte offsets, while every
// range this system hands to callers is measured in runes.
package textpos

import "unicode/utf8"

// RuneOffsets returns a table m of length len(s)+1 where m[b] is the rune
// offset of the rune containing byte b. m[len(s)] is the rune count of s.
func RuneOffsets(s string) []int {
	m := make([]int, len(s)+1)
	rc := 0
	for i := 0; i < len(s); {
		_, size := utf8.DecodeRuneInString(s[i:])
		for j := 0; j < size; j++ {
			m[i+j] = rc
		}
		i += size
		rc++
	}
	m[len(s)] = rc
	return m
}

// ToLowerASCII lowercases ASCII letters in s, leaving all other bytes
// untouched. The result has the same byte length as the input, so byte
// offsets into it are valid offsets into the original string.
func ToLowerASCII(s string) string {
	hasUpper := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return s
	}
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
