package structpages

import "net/http"

// NavItem is a navigation entry derived from the page tree. Href is empty for
// nodes that only group other pages.
type NavItem struct {
	Title    string
	Href     string
	Children []NavItem
}

// Nav builds the navigation tree below node. Only titled nodes are included,
// and only nodes that answer GET requests get an Href, so every link points
// at a mounted page.
func Nav(node *PageNode) NavItem {
	item := NavItem{Title: node.Title}
	if node.Renderable() && servesGet(node.Method) {
		item.Href = node.FullRoute()
	}
	for _, child := range node.Children {
		if child.Title == "" {
			continue
		}
		item.Children = append(item.Children, Nav(child))
	}
	return item
}

func servesGet(method string) bool {
	return method == methodAll || method == "" || method == http.MethodGet
}
