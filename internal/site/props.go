package site

import (
	"context"
	"net/http"

	"github.com/a-h/templ"

	"github.com/testingcanx/docsite/internal/config"
	"github.com/testingcanx/docsite/internal/structpages"
	"github.com/testingcanx/docsite/internal/ui"
)

// docsProps is shared by every page rendered inside the docs layout.
type docsProps struct {
	Title       string
	Description string
	Layout      ui.LayoutProps
}

func newDocsProps(r *http.Request, pn *structpages.PageNode, cfg *config.Config) (docsProps, error) {
	header, err := headerLinks(r.Context())
	if err != nil {
		return docsProps{}, err
	}
	return docsProps{
		Title:       pn.Title,
		Description: descriptions[pn.FullRoute()],
		Layout: ui.LayoutProps{
			SiteTitle:   cfg.SiteTitle,
			HeaderLinks: header,
			Path:        pn.FullRoute(),
			Sections:    sidebarSections(pn.Root()),
			PanelOpen:   panelOpen(r),
		},
	}, nil
}

// headerLinks are the top bar links of the docs layout.
func headerLinks(ctx context.Context) ([]ui.NavLink, error) {
	docs, err := structpages.URLFor(ctx, docsPage{})
	if err != nil {
		return nil, err
	}
	components, err := structpages.URLFor(ctx, badgePage{})
	if err != nil {
		return nil, err
	}
	return []ui.NavLink{
		{Label: "Docs", Href: docs},
		{Label: "Components", Href: components},
	}, nil
}

// panelOpen reads the mobile panel state of this page view. Anything but an
// explicit open keeps it closed.
func panelOpen(r *http.Request) bool {
	return r.URL.Query().Get(ui.PanelParam) == "open"
}

func (p docsProps) page(content templ.Component) templ.Component {
	return ui.Document(
		ui.DocumentProps{Title: p.Title, SiteTitle: p.Layout.SiteTitle, Description: p.Description},
		ui.DocsLayout(p.Layout, ui.Fragment(ui.PageHeader(p.Title, p.Description), content)),
	)
}

func (p docsProps) mobileNav() templ.Component {
	return ui.MobileNav(p.Layout)
}

// sidebarSections turns the docs subtree into sidebar sections: the docs
// page and its direct leaf pages form "Getting Started", every group below
// becomes its own section.
func sidebarSections(root *structpages.PageNode) []ui.NavSection {
	docs := root.Lookup(docsPage{})
	if docs == nil {
		return nil
	}
	nav := structpages.Nav(docs)
	start := ui.NavSection{Title: "Getting Started"}
	if nav.Href != "" {
		start.Links = append(start.Links, ui.NavLink{Label: nav.Title, Href: nav.Href})
	}
	var groups []ui.NavSection
	for _, item := range nav.Children {
		if len(item.Children) == 0 {
			if item.Href != "" {
				start.Links = append(start.Links, ui.NavLink{Label: item.Title, Href: item.Href})
			}
			continue
		}
		section := ui.NavSection{Title: item.Title}
		for _, child := range item.Children {
			if child.Href != "" {
				section.Links = append(section.Links, ui.NavLink{Label: child.Title, Href: child.Href})
			}
		}
		groups = append(groups, section)
	}
	return append([]ui.NavSection{start}, groups...)
}
