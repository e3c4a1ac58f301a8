package mailto

import (
	"slices"
	"strings"
)

// Headers are the optional fields of a mailto link. An empty slice and a nil
// slice are equivalent; empty values never reach the link.
type Headers struct {
	// Subject is the message subject.
	Subject string `json:"subject,omitempty"`
	// Cc lists carbon copy recipients, one query pair each.
	Cc []string `json:"cc,omitempty"`
	// Bcc lists blind carbon copy recipients, one query pair each.
	Bcc []string `json:"bcc,omitempty"`
	// Body is the flattened plain-text message body.
	Body string `json:"body,omitempty"`
}

// Recipients is the list of addresses placed in the mailto path.
// Addresses are not validated.
type Recipients []string

// NormalizeRecipients turns a single address or a list of addresses into
// Recipients. A bare string becomes a one-element list and a nil slice an
// empty one. Entries are neither trimmed nor deduplicated.
func NormalizeRecipients[T string | []string](in T) Recipients {
	switch v := any(in).(type) {
	case string:
		return Recipients{v}
	case []string:
		if v == nil {
			return Recipients{}
		}
		return Recipients(slices.Clone(v))
	}
	return Recipients{}
}

// ParseAddressList splits comma-separated free text into trimmed addresses.
// The empty string yields no addresses.
func ParseAddressList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
