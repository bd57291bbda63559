package ui

type HeroProps struct {
	SiteTitle    string
	Title        string
	Tagline      string
	PrimaryCTA   NavLink
	SecondaryCTA NavLink
	// Install is shown as a one-line code block under the buttons.
	Install string
}
