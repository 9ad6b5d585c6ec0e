package utils

import (
	"errors"
	"regexp"
	"strings"
)

const maxIndicatorLength = 100

var (
	// Detect potentially dangerous characters - more focused on injection patterns
	dangerousPattern = regexp.MustCompile(`[<>]|--|\/\*|\*\/|;.*--`)

	// Detect HTML/script tags
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
)

// ValidateIndicator validates an indicator name taken from a query string.
// Whether the name is known is decided against the loaded table elsewhere.
func ValidateIndicator(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("indicator cannot be empty")
	}

	if len(name) > maxIndicatorLength {
		return errors.New("indicator too long (max 100 characters)")
	}

	if dangerousPattern.MatchString(name) {
		return errors.New("indicator contains invalid characters")
	}

	return nil
}

// SanitizeInput removes HTML tags and other potentially dangerous content
func SanitizeInput(input string) string {
	sanitized := htmlTagPattern.ReplaceAllString(input, "")
	return strings.TrimSpace(sanitized)
}

// ValidateAndSanitizeIndicator validates and sanitizes an indicator name
func ValidateAndSanitizeIndicator(name string) (string, error) {
	if err := ValidateIndicator(name); err != nil {
		return "", err
	}

	return SanitizeInput(name), nil
}
