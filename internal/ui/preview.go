package ui

type PreviewProps struct {
	// Name identifies the previewed component, e.g. "badge".
	Name     string
	Source   string
	Language string
}

func (p PreviewProps) language() string {
	if p.Language == "" {
		return "tsx"
	}
	return p.Language
}
