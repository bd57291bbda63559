package ui

import (
	"context"
	"errors"
	"html"
	"io"
	"regexp"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, c.Render(context.Background(), &sb))
	return sb.String()
}

var (
	codeBodyRe  = regexp.MustCompile(`(?s)<code class="font-mono">(.*?)</code>`)
	codeLabelRe = regexp.MustCompile(`<span class="code-language[^"]*">(.*?)</span>`)
)

// displayed returns the label and code text a browser would show.
func displayed(t *testing.T, out string) (label, code string) {
	t.Helper()
	l := codeLabelRe.FindStringSubmatch(out)
	c := codeBodyRe.FindStringSubmatch(out)
	require.NotNil(t, l, "no label in %s", out)
	require.NotNil(t, c, "no code body in %s", out)
	return html.UnescapeString(l[1]), html.UnescapeString(c[1])
}

func TestCodeBlock(t *testing.T) {
	tests := []struct {
		name      string
		code      string
		language  string
		wantLabel string
	}{
		{name: "install command", code: "npm install -D testingcanxjs", language: "bash", wantLabel: "bash"},
		{name: "empty code", code: "", language: "bash", wantLabel: "bash"},
		{name: "default label", code: "x := 1", wantLabel: DefaultLanguage},
		{
			name:      "markup is shown not interpreted",
			code:      "<Badge variant=\"outline\">A & B</Badge>\n\t'quoted'\n",
			language:  "tsx",
			wantLabel: "tsx",
		},
		{name: "leading newline kept", code: "\n\nfoo", language: "text", wantLabel: "text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := render(t, CodeBlock(tt.code, tt.language))
			label, code := displayed(t, out)
			assert.Equal(t, tt.wantLabel, label)
			assert.Equal(t, tt.code, code)
			assert.NotContains(t, out, "<Badge")
		})
	}
}

func TestComponentPreview(t *testing.T) {
	out := render(t, ComponentPreview(PreviewProps{Name: "badge", Source: `<Badge>Badge</Badge>`}, Badge(BadgeDefault, "Badge")))
	assert.Contains(t, out, `data-component="badge"`)
	assert.Contains(t, out, `data-variant="default"`)
	label, code := displayed(t, out)
	assert.Equal(t, "tsx", label)
	assert.Equal(t, `<Badge>Badge</Badge>`, code)
}

func TestWidgets(t *testing.T) {
	assert.Contains(t, render(t, Badge("sparkly", "x")), `data-variant="default"`)
	assert.Contains(t, render(t, Badge(BadgeDestructive, "x")), "bg-red-500")

	in := render(t, Input(InputProps{ID: "email", Type: "email", Placeholder: "Email", Disabled: true}))
	assert.Contains(t, in, `type="email"`)
	assert.Contains(t, in, `id="email"`)
	assert.Contains(t, in, `placeholder="Email"`)
	assert.Contains(t, in, ` disabled>`)
	assert.Contains(t, render(t, Input(InputProps{})), `type="text"`)

	label := render(t, Label("email", "Your <email>"))
	assert.Contains(t, label, `for="email"`)
	assert.Contains(t, label, "Your &lt;email&gt;")
}

func TestProse(t *testing.T) {
	out := render(t, Prose("## Setup\n\nRun **this** and <script>alert(1)</script>."))
	assert.Contains(t, out, `<h2 id="setup">Setup</h2>`)
	assert.Contains(t, out, "<strong>this</strong>")
	assert.NotContains(t, out, "<script>")
}

func TestDocument(t *testing.T) {
	out := render(t, Document(DocumentProps{Title: "Badge", SiteTitle: "testingcanx", Description: `a "quoted" page`},
		templ.Raw("<p>hello</p>")))
	assert.True(t, strings.HasPrefix(out, "<!doctype html>"))
	assert.Contains(t, out, "<title>Badge · testingcanx</title>")
	assert.Contains(t, out, `content="a &#34;quoted&#34; page"`)
	assert.Contains(t, out, "htmx.org")
	assert.Contains(t, out, "<p>hello</p></body>")
}

type failingComponent struct{}

func (failingComponent) Render(context.Context, io.Writer) error { return errors.New("nope") }

func TestErrorsPropagate(t *testing.T) {
	err := Fragment(templ.Raw("a"), failingComponent{}, templ.Raw("b")).Render(context.Background(), io.Discard)
	require.EqualError(t, err, "nope")
}

func TestUnsafeHrefIsSanitized(t *testing.T) {
	out := render(t, Sidebar([]NavSection{{Title: "x", Links: []NavLink{{Label: "bad", Href: "javascript:alert(1)"}}}}, ""))
	assert.Contains(t, out, `href="about:invalid#TemplFailedSanitizationURL"`)
}
