package trigger

import (
	"bytes"
	"encoding/base64"
	"html"
	"io"
	"sort"

	"github.com/pixelvide/mailto-go/pkg/mailto"
)

// obfuscatedOnClick decodes the data-mailto attribute at click time. The
// attribute holds the base64 of the percent-encoded link, which keeps it
// ASCII for atob.
const obfuscatedOnClick = "event.preventDefault();window.location.href=decodeURIComponent(atob(this.dataset.mailto));"

// WriteHTML renders the anchor as an <a> element. Attributes are written in
// a stable order and escaped. A nil anchor renders nothing.
func (a *Anchor) WriteHTML(w io.Writer) (int64, error) {
	if a == nil {
		return 0, nil
	}

	bb := new(bytes.Buffer)
	bb.WriteString("<a")
	writeAttr(bb, "href", a.Href)
	if a.Obfuscated() {
		writeAttr(bb, "data-mailto", dataMailto(a.link))
		writeAttr(bb, "onclick", obfuscatedOnClick)
	}

	keys := make([]string, 0, len(a.Attrs))
	for k := range a.Attrs {
		if a.Obfuscated() && (k == "data-mailto" || k == "onclick") {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		writeAttr(bb, k, a.Attrs[k])
	}

	bb.WriteString(">")
	bb.WriteString(html.EscapeString(a.Content))
	bb.WriteString("</a>")

	return bb.WriteTo(w)
}

// HTML returns the rendered anchor, or "" for a nil anchor.
func (a *Anchor) HTML() string {
	var sb bytes.Buffer
	_, _ = a.WriteHTML(&sb)
	return sb.String()
}

func dataMailto(link string) string {
	return base64.StdEncoding.EncodeToString([]byte(mailto.EncodeComponent(link)))
}

func writeAttr(bb *bytes.Buffer, name, value string) {
	bb.WriteString(" ")
	bb.WriteString(html.EscapeString(name))
	bb.WriteString(`="`)
	bb.WriteString(html.EscapeString(value))
	bb.WriteString(`"`)
}
