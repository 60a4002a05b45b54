package validator

import (
	"path"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	emailRegex = "^[a-zA-Z0-9.!#$%&'*+\\/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$"
)

var EmailRgx = regexp.MustCompile(emailRegex)

// NotBlank returns true if a string has any non-whitespace content.
func NotBlank(value string) bool {
	return strings.TrimSpace(value) != ""
}

func MinRunes(value string, n int) bool {
	return utf8.RuneCountInString(value) >= n
}

func MaxRunes(value string, n int) bool {
	return utf8.RuneCountInString(value) <= n
}

// In returns true if a value is in a list of values.
func In[T comparable](value T, list ...T) bool {
	for i := range list {
		if value == list[i] {
			return true
		}
	}
	return false
}

// AllIn returns true if all values are in the safelist.
func AllIn[T comparable](values []T, safelist ...T) bool {
	for i := range values {
		if !In(values[i], safelist...) {
			return false
		}
	}
	return true
}

// IsEmail returns true if a string is a valid email address.
func IsEmail(value string) bool {
	if len(value) > 254 {
		return false
	}
	return EmailRgx.MatchString(value)
}

// HasExtension reports whether filename ends in one of exts, ignoring case.
// exts are given without the leading dot.
func HasExtension(filename string, exts ...string) bool {
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(filename)), ".")
	if ext == "" {
		return false
	}
	return In(ext, exts...)
}
