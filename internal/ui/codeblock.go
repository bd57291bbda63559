package ui

import "github.com/a-h/templ"

// DefaultLanguage labels code blocks created without a language.
const DefaultLanguage = "code"

// CodeBlock shows code verbatim under a language label. The text is escaped
// for HTML only, so what the reader sees is exactly code.
func CodeBlock(code, language string) templ.Component {
	if language == "" {
		language = DefaultLanguage
	}
	return codeBlock(code, language)
}
