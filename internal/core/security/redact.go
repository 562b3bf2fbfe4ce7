package security

import "strings"

// secretNameFragments are lower-cased substrings of a field name that mark
// its default value as sensitive for logging purposes.
var secretNameFragments = []string{
	"password",
	"secret",
	"token",
	"apikey",
	"privatekey",
}

// LooksSecret reports whether fieldName suggests its value should be
// redacted before logging (a simple name heuristic, not a security
// boundary).
func LooksSecret(fieldName string) bool {
	lower := strings.ToLower(fieldName)
	for _, frag := range secretNameFragments {
		if strings.Contains(lower, frag) {
			return true
		}
	}
	return false
}

// RedactForLog returns "[redacted]" when fieldName looks secret, and value
// unchanged otherwise. Intended for use around default-value logging, never
// around generated code output (generated code must keep the real default).
func RedactForLog(fieldName string, value any) any {
	if LooksSecret(fieldName) {
		return "[redacted]"
	}
	return value
}
