package ledger

import "strings"

const (
	referencePrefix    = "Ref:"
	referenceDelimiter = " - "
)

// ParseReference extracts the reference token from a description of the form
// "Ref: <token> - <text>". The prefix match ignores case and the first delimiter wins.
// Anything else yields "".
func ParseReference(description string) string {
	if len(description) < len(referencePrefix) ||
		!strings.EqualFold(description[:len(referencePrefix)], referencePrefix) {
		return ""
	}

	idx := strings.Index(description, referenceDelimiter)
	if idx < len(referencePrefix) {
		return ""
	}
	return strings.TrimSpace(description[len(referencePrefix):idx])
}
