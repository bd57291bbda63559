package site

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/testingcanx/docsite/internal/config"
	"github.com/testingcanx/docsite/internal/structpages"
	"github.com/testingcanx/docsite/internal/ui"
)

func (index) Props(r *http.Request, cfg *config.Config) (ui.HeroProps, error) {
	docsURL, err := structpages.URLFor(r.Context(), docsPage{})
	if err != nil {
		return ui.HeroProps{}, err
	}
	installURL, err := structpages.URLFor(r.Context(), installationPage{})
	if err != nil {
		return ui.HeroProps{}, err
	}
	return ui.HeroProps{
		SiteTitle:    cfg.SiteTitle,
		Title:        "Build your component library",
		Tagline:      descriptions["/docs"],
		PrimaryCTA:   ui.NavLink{Label: "Get Started", Href: docsURL},
		SecondaryCTA: ui.NavLink{Label: "Installation", Href: installURL},
		Install:      installCommand,
	}, nil
}

func (index) Page(p ui.HeroProps) templ.Component {
	return ui.Document(
		ui.DocumentProps{SiteTitle: p.SiteTitle, Description: p.Tagline},
		ui.Hero(p),
	)
}
