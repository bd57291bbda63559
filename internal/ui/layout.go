package ui

import "net/url"

// MobileNavID is the element swapped when the mobile panel opens or closes.
const MobileNavID = "mobile-nav"

// PanelParam is the query parameter carrying the mobile panel state.
const PanelParam = "panel"

type NavLink struct {
	Label string
	Href  string
}

type NavSection struct {
	Title string
	Links []NavLink
}

type LayoutProps struct {
	SiteTitle string
	// Home is the href of the site title, "/" when empty.
	Home        string
	HeaderLinks []NavLink
	// Path of the page being rendered, used for the active link and the
	// panel toggle URLs.
	Path      string
	Sections  []NavSection
	PanelOpen bool
}

// PanelURL is the page URL that renders the mobile panel in the given state.
func (p LayoutProps) PanelURL(open bool) string {
	state := "closed"
	if open {
		state = "open"
	}
	return p.Path + "?" + url.Values{PanelParam: {state}}.Encode()
}

func (p LayoutProps) homeHref() string {
	if p.Home == "" {
		return "/"
	}
	return p.Home
}
