package service

import "regexp"

// shapePattern classifies a candidate value by its textual shape so the
// wizard can suggest a sensible field name. The list is ordered: the first
// match wins, so narrower shapes come before broader ones.
type shapePattern struct {
	suggestedName string
	fieldType     string
	re            *regexp.Regexp
}

var shapePatterns = []shapePattern{
	{"email", "STRING", regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)},
	{"url", "URL", regexp.MustCompile(`^https?://\S+$`)},
	{"one-time password", "OTP", regexp.MustCompile(`^\d{6}$`)},
	{"card number", "STRING", regexp.MustCompile(`^\d(?:[\d -]{11,17})\d$`)},
	{"phone", "PHONE", regexp.MustCompile(`^\+?[\d() -]{7,15}\d$`)},
	{"number", "STRING", regexp.MustCompile(`^\d+$`)},
}

// ClassifyCandidate returns the suggested field name and remote field type
// for a candidate value. Values matching no known shape fall back to a
// generic text field.
func ClassifyCandidate(value string) (suggestedName, fieldType string) {
	for _, p := range shapePatterns {
		if p.re.MatchString(value) {
			return p.suggestedName, p.fieldType
		}
	}
	return "text", "STRING"
}
