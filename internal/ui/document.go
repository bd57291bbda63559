package ui

type DocumentProps struct {
	Title       string
	SiteTitle   string
	Description string
}

func (p DocumentProps) title() string {
	if p.Title != "" && p.Title != p.SiteTitle {
		return p.Title + " · " + p.SiteTitle
	}
	return p.SiteTitle
}
