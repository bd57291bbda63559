package structpages

import (
	"fmt"
	"iter"
	"path"
	"reflect"
	"strings"
)

// PageNode is a parsed page in the page tree.
type PageNode struct {
	Name        string
	Title       string
	Method      string
	Route       string
	Value       reflect.Value
	Props       map[string]*reflect.Method
	Components  map[string]*reflect.Method
	Handler     *reflect.Method
	Config      *reflect.Method
	Middlewares *reflect.Method
	Parent      *PageNode
	Children    []*PageNode
}

// FullRoute joins the routes of all ancestors with the node's own route.
func (pn *PageNode) FullRoute() string {
	if pn.Parent == nil {
		return pn.Route
	}
	return path.Join(pn.Parent.FullRoute(), pn.Route)
}

// Root returns the top of the tree pn belongs to.
func (pn *PageNode) Root() *PageNode {
	for pn.Parent != nil {
		pn = pn.Parent
	}
	return pn
}

// Renderable reports whether the node serves requests itself, either through
// a Page component or a ServeHTTP method. Nodes that only group children are
// not renderable.
func (pn *PageNode) Renderable() bool {
	return pn.Handler != nil || pn.Components["Page"] != nil
}

// All iterates the subtree rooted at pn in depth-first order.
func (pn *PageNode) All() iter.Seq[*PageNode] {
	return func(yield func(*PageNode) bool) {
		walk(pn, yield)
	}
}

func walk(pn *PageNode, yield func(*PageNode) bool) bool {
	if !yield(pn) {
		return false
	}
	for _, child := range pn.Children {
		if !walk(child, yield) {
			return false
		}
	}
	return true
}

// Lookup finds the first node in the subtree whose page type matches page.
// Value and pointer forms of the same struct type match each other.
func (pn *PageNode) Lookup(page any) *PageNode {
	if page == nil {
		return nil
	}
	want := pointerType(reflect.TypeOf(page))
	for node := range pn.All() {
		if pointerType(node.Value.Type()) == want {
			return node
		}
	}
	return nil
}

func (pn PageNode) String() string {
	var sb strings.Builder
	sb.WriteString("PageNode{")
	sb.WriteString("\n  name: " + pn.Name)
	sb.WriteString("\n  title: " + pn.Title)
	sb.WriteString("\n  route: " + pn.Method + " " + pn.Route)
	sb.WriteString("\n  middlewares: " + formatMethod(pn.Middlewares))
	if pn.Handler != nil {
		sb.WriteString("\n  handler: " + formatMethod(pn.Handler))
	}
	if len(pn.Components) == 0 {
		sb.WriteString("\n  components: []")
	}
	for _, name := range sortedKeys(pn.Components) {
		sb.WriteString("\n  component: " + name + " -> " + formatMethod(pn.Components[name]))
	}
	for _, name := range sortedKeys(pn.Props) {
		sb.WriteString("\n  props: " + name + " -> " + formatMethod(pn.Props[name]))
	}
	for i, child := range pn.Children {
		fmt.Fprintf(&sb, "\n  child %d:", i+1)
		childStr := strings.TrimRight(child.String(), "\n")
		for _, line := range strings.SplitAfter(childStr, "\n") {
			sb.WriteString("  " + line)
		}
	}
	sb.WriteString("\n}")
	return sb.String()
}
