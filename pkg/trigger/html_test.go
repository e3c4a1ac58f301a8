package trigger

import (
	"bytes"
	"context"
	"encoding/base64"
	"net/url"
	"regexp"
	"testing"

	"github.com/pixelvide/mailto-go/pkg/mailto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnchor_HTML_Direct(t *testing.T) {
	c := sampleControl()
	c.Children[0] = Trigger{Content: "Send <Email>", Attrs: map[string]string{"class": "btn", "data-x": `a"b`}}

	a := Bind(context.Background(), c)
	require.NotNil(t, a)

	assert.Equal(t,
		`<a href="mailto:test@example.com?subject=Test%20Subject&amp;body=Body%20Content" class="btn" data-x="a&#34;b">Send &lt;Email&gt;</a>`,
		a.HTML(),
	)
}

func TestAnchor_HTML_Obfuscated(t *testing.T) {
	c := Control{
		To:        mailto.Recipients{"a@x.com"},
		Subject:   "Hi",
		Obfuscate: true,
		Attrs:     map[string]string{"onclick": "steal()", "rel": "nofollow"},
		Children:  []Element{Trigger{Content: "Mail us"}},
	}

	a := Bind(context.Background(), c)
	require.NotNil(t, a)

	out := a.HTML()
	assert.Equal(t,
		`<a href="#" data-mailto="bWFpbHRvJTNBYSU0MHguY29tJTNGc3ViamVjdCUzREhp" onclick="event.preventDefault();window.location.href=decodeURIComponent(atob(this.dataset.mailto));" rel="nofollow">Mail us</a>`,
		out,
	)
	assert.NotContains(t, out, "a@x.com")
}

func TestAnchor_HTML_ObfuscatedNonASCII(t *testing.T) {
	c := Control{
		To:        mailto.Recipients{"josé@x.com"},
		Subject:   "Olá",
		Obfuscate: true,
		Children:  []Element{Trigger{Content: "Mail us"}},
	}

	a := Bind(context.Background(), c)
	require.NotNil(t, a)

	re := regexp.MustCompile(`data-mailto="([^"]*)"`)
	m := re.FindStringSubmatch(a.HTML())
	require.Len(t, m, 2)

	// atob yields one character per byte, so the payload must be ASCII.
	raw, err := base64.StdEncoding.DecodeString(m[1])
	require.NoError(t, err)
	for _, b := range raw {
		assert.Less(t, b, byte(0x80))
	}

	// decodeURIComponent of the payload is the precomputed link.
	decoded, err := url.PathUnescape(string(raw))
	require.NoError(t, err)
	assert.Equal(t, "mailto:josé@x.com?subject=Ol%C3%A1", decoded)
	assert.Equal(t, "bWFpbHRvJTNBam9zJUMzJUE5JTQweC5jb20lM0ZzdWJqZWN0JTNET2wlMjVDMyUyNUEx", m[1])

	loc := &recordingLocation{}
	a.Click(noopEvent{}, loc)
	assert.Equal(t, decoded, loc.href)
}

type noopEvent struct{}

func (noopEvent) PreventDefault() {}

type recordingLocation struct{ href string }

func (l *recordingLocation) Assign(href string) { l.href = href }

func TestAnchor_WriteHTML_Nil(t *testing.T) {
	var a *Anchor
	var buf bytes.Buffer
	n, err := a.WriteHTML(&buf)
	assert.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, buf.String())
}
