package viewer_test

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learningmyway/archdiagrams/pkg/diagram"
	"github.com/learningmyway/archdiagrams/pkg/viewer"
)

var footerTimestamp = regexp.MustCompile(`<p>Generated on (\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2})</p>`)

func render(t *testing.T, at time.Time) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, viewer.Render(&buf, diagram.All(), at))
	return buf.String()
}

func TestRenderTimestamp(t *testing.T) {
	at := time.Date(2026, time.February, 13, 9, 5, 7, 0, time.Local)
	html := render(t, at)

	m := footerTimestamp.FindAllStringSubmatch(html, -1)
	require.Len(t, m, 1)
	assert.Equal(t, "2026-02-13 09:05:07", m[0][1])
}

func TestRenderOnlyTimestampVaries(t *testing.T) {
	a := render(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.Local))
	b := render(t, time.Date(2031, time.December, 31, 23, 59, 59, 0, time.Local))
	assert.NotEqual(t, a, b)

	placeholder := "<p>Generated on {{timestamp}}</p>"
	assert.Equal(t,
		footerTimestamp.ReplaceAllString(a, placeholder),
		footerTimestamp.ReplaceAllString(b, placeholder))
}

func TestRenderReferencesEveryDiagram(t *testing.T) {
	html := render(t, time.Now())

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>\n<html lang=\"en\">\n"))
	assert.True(t, strings.HasSuffix(html, "</body>\n</html>\n"))
	assert.Equal(t, 5, strings.Count(html, `<div class="diagram-section">`))

	last := 0
	for _, d := range diagram.All() {
		ref := "<p><em>File: " + d.Filename() + "</em></p>"
		idx := strings.Index(html, ref)
		require.NotEqual(t, -1, idx, "missing reference to %s", d.Filename())
		assert.Greater(t, idx, last, "%s out of order", d.Filename())
		last = idx
	}
}

func TestRenderSectionLayout(t *testing.T) {
	html := render(t, time.Now())

	want := `        </div>

        <div class="diagram-section">
            <h2>Infrastructure Architecture</h2>
            <p>Complete end-to-end infrastructure showing both GCP projects, VPCs, and components.</p>
            <div class="diagram">
                <p><em>File: infrastructure.puml</em></p>
            </div>
        </div>

        <div class="diagram-section">
            <h2>PKI Certificate Chain</h2>
            <p>3-tier certificate chain: Root CA → Intermediate CA → Server Certificate</p>
            <div class="diagram">
                <p><em>File: pki.puml</em></p>
            </div>
        </div>
`
	assert.Contains(t, html, want)
	assert.Contains(t, html, "        </div>\n\n        <div class=\"footer\">\n")
	assert.Contains(t, html, "<code>java -jar plantuml.jar *.puml</code>")
}

func TestFormatTimestamp(t *testing.T) {
	at := time.Date(2027, time.February, 13, 18, 30, 0, 0, time.Local)
	assert.Equal(t, "2027-02-13 18:30:00", viewer.FormatTimestamp(at))
}
