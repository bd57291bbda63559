package structpages

import (
	"testing"

	"github.com/a-h/templ"
	"github.com/google/go-cmp/cmp"
)

type navTop struct {
	docs navDocs         `route:"GET /docs Introduction"`
	api  TestHandlerPage `route:"POST /api Api"`
	raw  treeLeaf        `route:"/raw"`
}

type navDocs struct {
	install treeLeaf  `route:"GET /installation Installation"`
	widgets treeGroup `route:"/widgets Widgets"`
}

func (navDocs) Page() templ.Component { return testComponent{content: "docs"} }

func TestNav(t *testing.T) {
	pc, err := parsePageTree("/", navTop{})
	if err != nil {
		t.Fatalf("parsePageTree failed: %v", err)
	}
	got := Nav(pc.root)
	want := NavItem{
		Children: []NavItem{
			{
				Title: "Introduction",
				Href:  "/docs",
				Children: []NavItem{
					{Title: "Installation", Href: "/docs/installation"},
					{
						Title: "Widgets",
						Children: []NavItem{
							{Title: "First", Href: "/docs/widgets/first"},
							{Title: "Second", Href: "/docs/widgets/second"},
						},
					},
				},
			},
			// POST pages are listed but not linked
			{Title: "Api"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Nav() mismatch (-want +got):\n%s", diff)
	}
}
