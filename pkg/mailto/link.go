package mailto

import (
	"net/url"
	"strings"
)

const scheme = "mailto:"

// componentFixer turns url.QueryEscape output into encodeURIComponent output:
// spaces become %20 and the sub-delims ! ' ( ) * stay literal.
var componentFixer = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeComponent percent-encodes s with URI component rules: every byte
// except A-Z a-z 0-9 - _ . ! ~ * ' ( ) is escaped.
func EncodeComponent(s string) string {
	return componentFixer.Replace(url.QueryEscape(s))
}

// SearchString renders the query part of a mailto link, without the leading
// question mark. Pairs appear in the order subject, cc, bcc, body.
func SearchString(h Headers) string {
	var pairs []string
	add := func(key, value string) {
		if value == "" {
			return
		}
		pairs = append(pairs, key+"="+EncodeComponent(value))
	}

	add("subject", h.Subject)
	for _, cc := range h.Cc {
		add("cc", cc)
	}
	for _, bcc := range h.Bcc {
		add("bcc", bcc)
	}
	add("body", h.Body)

	return strings.Join(pairs, "&")
}

// BuildLink returns the mailto URI for the given recipients and headers.
// Recipients are joined with commas and left unencoded.
func BuildLink(recipients Recipients, h Headers) string {
	link := scheme + strings.Join(recipients, ",")
	if q := SearchString(h); q != "" {
		link += "?" + q
	}
	return link
}
