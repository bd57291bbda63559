//lint:file-ignore U1000 route fields are read through reflection

package site

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/testingcanx/docsite/internal/config"
	"github.com/testingcanx/docsite/internal/structpages"
)

type index struct {
	docs    docsPage    `route:"GET /docs Introduction"`
	sitemap sitemapPage `route:"GET /sitemap.xml"`
	robots  robotsPage  `route:"GET /robots.txt"`
}

type docsPage struct {
	installation installationPage `route:"GET /installation Installation"`
	components   componentsGroup  `route:"/components Components"`
}

// componentsGroup only groups the component reference pages.
type componentsGroup struct {
	badge badgePage `route:"GET /badge Badge"`
	input inputPage `route:"GET /input Input"`
	label labelPage `route:"GET /label Label"`
}

type (
	installationPage struct{}
	badgePage        struct{}
	inputPage        struct{}
	labelPage        struct{}
)

var descriptions = map[string]string{
	"/docs":                  "Beautifully designed components you can copy into your apps. Accessible. Customizable. Open Source.",
	"/docs/installation":     "How to install testingcanxjs and set up your project.",
	"/docs/components/badge": "Displays a badge or a component that looks like a badge.",
	"/docs/components/input": "Displays a form input field or a component that looks like an input field.",
	"/docs/components/label": "Renders an accessible label associated with controls.",
}

func (docsPage) Page(p docsProps) templ.Component      { return p.page(introductionContent()) }
func (docsPage) MobileNav(p docsProps) templ.Component { return p.mobileNav() }
func (docsPage) Props(r *http.Request, pn *structpages.PageNode, cfg *config.Config) (docsProps, error) {
	return newDocsProps(r, pn, cfg)
}

func (installationPage) Page(p docsProps) templ.Component      { return p.page(installationContent()) }
func (installationPage) MobileNav(p docsProps) templ.Component { return p.mobileNav() }
func (installationPage) Props(r *http.Request, pn *structpages.PageNode, cfg *config.Config) (docsProps, error) {
	return newDocsProps(r, pn, cfg)
}

func (badgePage) Page(p docsProps) templ.Component      { return p.page(badgeContent()) }
func (badgePage) MobileNav(p docsProps) templ.Component { return p.mobileNav() }
func (badgePage) Props(r *http.Request, pn *structpages.PageNode, cfg *config.Config) (docsProps, error) {
	return newDocsProps(r, pn, cfg)
}

func (inputPage) Page(p docsProps) templ.Component      { return p.page(inputContent()) }
func (inputPage) MobileNav(p docsProps) templ.Component { return p.mobileNav() }
func (inputPage) Props(r *http.Request, pn *structpages.PageNode, cfg *config.Config) (docsProps, error) {
	return newDocsProps(r, pn, cfg)
}

func (labelPage) Page(p docsProps) templ.Component      { return p.page(labelContent()) }
func (labelPage) MobileNav(p docsProps) templ.Component { return p.mobileNav() }
func (labelPage) Props(r *http.Request, pn *structpages.PageNode, cfg *config.Config) (docsProps, error) {
	return newDocsProps(r, pn, cfg)
}
