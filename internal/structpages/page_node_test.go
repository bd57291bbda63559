package structpages

import (
	"net/http"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func Test_walk(t *testing.T) {
	testNode := &PageNode{
		Name: "Top",
		Children: []*PageNode{
			{
				Name: "Child1",
				Children: []*PageNode{
					{Name: "GrandChild1"},
					{Name: "GrandChild2"},
				},
			},
			{
				Name: "Child2",
				Children: []*PageNode{
					{Name: "GrandChild3"},
					{Name: "GrandChild4"},
				},
			},
		},
	}
	expected := []string{"Top", "Child1", "GrandChild1", "GrandChild2", "Child2", "GrandChild3", "GrandChild4"}
	t.Run("walk iter all", func(t *testing.T) {
		items := make([]string, 0)
		for n := range testNode.All() {
			items = append(items, n.Name)
		}
		if len(items) != len(expected) {
			t.Fatalf("Expected %d items, got %d", len(expected), len(items))
		}
		for i, name := range expected {
			if items[i] != name {
				t.Errorf("Expected item %d to be %s, got %s", i, name, items[i])
			}
		}
	})
	t.Run("walk with break", func(t *testing.T) {
		items := make([]string, 0)
		for n := range testNode.All() {
			if len(items) == 3 {
				break
			}
			items = append(items, n.Name)
		}
		if len(items) != 3 {
			t.Errorf("Expected 3 items, got %d", len(items))
		}
	})
}

type treeLeaf struct{}

func (treeLeaf) Page() templ.Component { return testComponent{content: "leaf"} }

type treeGroup struct {
	first  treeLeaf  `route:"GET /first First"`
	second *treeLeaf `route:"/second Second"`
}

type treeTop struct {
	group treeGroup       `route:"/group Group"`
	api   TestHandlerPage `route:"POST /api"`
}

func TestParsePageTree(t *testing.T) {
	pc, err := parsePageTree("/", &treeTop{})
	if err != nil {
		t.Fatalf("parsePageTree failed: %v", err)
	}
	root := pc.root
	if root.Route != "/" || root.Method != methodAll {
		t.Errorf("unexpected root %s %s", root.Method, root.Route)
	}
	if len(root.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(root.Children))
	}
	group := root.Children[0]
	if group.Renderable() {
		t.Error("group without Page must not be renderable")
	}
	if got := group.Children[1].FullRoute(); got != "/group/second" {
		t.Errorf("FullRoute() = %q, want /group/second", got)
	}
	if got := group.Children[0].Root(); got != root {
		t.Error("Root() did not return the tree root")
	}
	api := root.Children[1]
	if !api.Renderable() || api.Method != http.MethodPost || api.Title != "" {
		t.Errorf("unexpected api node: %s", api)
	}
	if n := root.Lookup(treeLeaf{}); n == nil || n.Name != "first" {
		t.Errorf("Lookup() returned %v", n)
	}
	if n := root.Lookup(noPageComponent{}); n != nil {
		t.Errorf("Lookup() of unmounted type returned %v", n)
	}

	s := root.String()
	for _, want := range []string{"name: group", "component: Page", "handler: "} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}
}

func Test_parseTag(t *testing.T) {
	tests := []struct {
		route                   string
		method, path, wantTitle string
	}{
		{route: "", method: methodAll, path: "/"},
		{route: "/docs", method: methodAll, path: "/docs"},
		{route: "/docs Getting Started", method: methodAll, path: "/docs", wantTitle: "Getting Started"},
		{route: "GET /docs", method: http.MethodGet, path: "/docs"},
		{route: "post /form Send it", method: http.MethodPost, path: "/form", wantTitle: "Send it"},
	}
	for _, tt := range tests {
		method, path, title := parseTag(tt.route)
		if method != tt.method || path != tt.path || title != tt.wantTitle {
			t.Errorf("parseTag(%q) = %q, %q, %q; want %q, %q, %q",
				tt.route, method, path, title, tt.method, tt.path, tt.wantTitle)
		}
	}
}
