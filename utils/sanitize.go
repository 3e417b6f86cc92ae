package utils

import "github.com/microcosm-cc/bluemonday"

var (
	ugcPolicy   = bluemonday.UGCPolicy()
	plainPolicy = bluemonday.StrictPolicy()
)

// Sanitize cleans HTML content to prevent XSS attacks while keeping common
// user-generated markup.
func Sanitize(input string) string {
	return ugcPolicy.Sanitize(input)
}

// SanitizePlain strips all markup. Used for free-text fields that are stored
// and echoed verbatim, like feedback comments and deletion reasons.
func SanitizePlain(input string) string {
	return plainPolicy.Sanitize(input)
}
