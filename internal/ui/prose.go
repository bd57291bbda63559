package ui

import (
	"bytes"

	"github.com/a-h/templ"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
)

// Prose renders a markdown snippet. Raw HTML in the source is not passed
// through. A conversion error surfaces when the component renders.
func Prose(src string) templ.Component {
	var buf bytes.Buffer
	err := markdown.Convert([]byte(src), &buf)
	return prose(templ.Raw(buf.String(), err))
}
