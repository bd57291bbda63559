package structpages

import (
	"fmt"
	"net/http"
	"reflect"
	"slices"

	"github.com/angelofallars/htmx-go"
)

// MiddlewareFunc wraps the handler of a page. Middlewares returned by a
// page's Middlewares method also wrap all of its descendants.
type MiddlewareFunc func(http.Handler, *PageNode) http.Handler

// Route describes a page registered by MountPages.
type Route struct {
	Method string
	Path   string
	Title  string
	Name   string
}

type StructPages struct {
	onError           func(http.ResponseWriter, *http.Request, error)
	middlewares       []MiddlewareFunc
	defaultPageConfig func(*http.Request) (string, error)
	routes            []Route
	roots             []*PageNode
}

type Option func(*StructPages)

func New(options ...Option) *StructPages {
	sp := &StructPages{
		onError: func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		},
	}
	for _, opt := range options {
		opt(sp)
	}
	return sp
}

func WithErrorHandler(onError func(http.ResponseWriter, *http.Request, error)) Option {
	return func(sp *StructPages) {
		sp.onError = onError
	}
}

// WithMiddlewares adds middlewares applied to every page. The first one is
// the outermost.
func WithMiddlewares(middlewares ...MiddlewareFunc) Option {
	return func(sp *StructPages) {
		sp.middlewares = append(sp.middlewares, middlewares...)
	}
}

// WithDefaultPageConfig sets how the component to render is chosen for pages
// without their own PageConfig method.
func WithDefaultPageConfig(config func(*http.Request) (string, error)) Option {
	return func(sp *StructPages) {
		sp.defaultPageConfig = config
	}
}

// MountPages parses the page tree rooted at page and registers every
// renderable page on router. args are made available to page methods by type.
func (sp *StructPages) MountPages(router Router, page any, route, title string, args ...any) error {
	pc, err := parsePageTree(route, page, args...)
	if err != nil {
		return err
	}
	if title != "" {
		pc.root.Title = title
	}
	if err := sp.registerPageItem(router, pc, pc.root); err != nil {
		return err
	}
	sp.roots = append(sp.roots, pc.root)
	return nil
}

// Roots returns the root of every mounted page tree.
func (sp *StructPages) Roots() []*PageNode {
	return slices.Clone(sp.roots)
}

// Routes returns the pages registered so far, in registration order.
func (sp *StructPages) Routes() []Route {
	return slices.Clone(sp.routes)
}

func (sp *StructPages) registerPageItem(router Router, pc *parseContext, page *PageNode) error {
	if page.Route == "" {
		return fmt.Errorf("page item route is empty: %s", page.Name)
	}
	// nested pages are registered first to avoid conflicts with the parent route
	for _, child := range page.Children {
		if err := sp.registerPageItem(router, pc, child); err != nil {
			return err
		}
	}
	handler, err := sp.buildHandler(page, pc)
	if err != nil {
		return err
	}
	if handler == nil {
		return nil
	}
	for node := page; node != nil; node = node.Parent {
		if node.Middlewares == nil {
			continue
		}
		middlewares, err := pageMiddlewares(pc, node)
		if err != nil {
			return err
		}
		handler = applyMiddlewares(handler, page, middlewares)
	}
	handler = applyMiddlewares(handler, page, sp.middlewares)
	handler = withParseContext(pc)(handler, page)

	fullRoute := page.FullRoute()
	router.HandleMethod(page.Method, fullRoute, handler)
	sp.routes = append(sp.routes, Route{Method: page.Method, Path: fullRoute, Title: page.Title, Name: page.Name})
	return nil
}

func pageMiddlewares(pc *parseContext, node *PageNode) ([]MiddlewareFunc, error) {
	res, err := pc.callMethod(node, node.Middlewares)
	if err != nil {
		return nil, err
	}
	if len(res) != 1 {
		return nil, fmt.Errorf("middlewares method on %s did not return single result", node.Name)
	}
	middlewares, ok := res[0].Interface().([]MiddlewareFunc)
	if !ok {
		return nil, fmt.Errorf("middlewares method on %s did not return []MiddlewareFunc", node.Name)
	}
	return middlewares, nil
}

// applyMiddlewares wraps handler so that middlewares[0] runs first.
func applyMiddlewares(handler http.Handler, page *PageNode, middlewares []MiddlewareFunc) http.Handler {
	for _, mw := range slices.Backward(middlewares) {
		handler = mw(handler, page)
	}
	return handler
}

func (sp *StructPages) buildHandler(page *PageNode, pc *parseContext) (http.Handler, error) {
	if page.Handler != nil {
		return sp.methodHandler(page, pc), nil
	}
	if len(page.Components) == 0 {
		return nil, nil
	}
	if page.Components["Page"] == nil {
		return nil, fmt.Errorf("page item %s does not have a Page component", page.Name)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name, err := sp.componentName(pc, page, r)
		if err != nil {
			sp.onError(w, r, fmt.Errorf("error selecting component on %s: %w", page.Name, err))
			return
		}
		method, ok := page.Components[name]
		// an htmx target the page can't render gets the whole page instead
		retarget := false
		if !ok {
			method = page.Components["Page"]
			retarget = htmx.IsHTMX(r)
		}

		props, err := sp.props(pc, page, method.Name, r)
		if err != nil {
			sp.onError(w, r, fmt.Errorf("error calling props for %s on %s: %w", method.Name, page.Name, err))
			return
		}
		comp, err := pc.callComponentMethod(page, method, props...)
		if err != nil {
			sp.onError(w, r, err)
			return
		}

		buf := getBuffer()
		defer releaseBuffer(buf)
		if err := comp.Render(r.Context(), buf); err != nil {
			sp.onError(w, r, fmt.Errorf("error rendering %s on %s: %w", method.Name, page.Name, err))
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if retarget {
			if err := htmx.NewResponse().Retarget("body").Write(w); err != nil {
				sp.onError(w, r, err)
				return
			}
		}
		_, _ = w.Write(buf.Bytes())
	}), nil
}

// methodHandler serves a page through its ServeHTTP method. Parameters after
// the writer and request are injected, and a trailing error result goes to
// the error handler.
func (sp *StructPages) methodHandler(page *PageNode, pc *parseContext) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		res, err := pc.callMethod(page, page.Handler, reflect.ValueOf(w), reflect.ValueOf(r))
		if err != nil {
			sp.onError(w, r, fmt.Errorf("error calling ServeHTTP on %s: %w", page.Name, err))
			return
		}
		if _, err := extractError(res); err != nil {
			sp.onError(w, r, err)
		}
	})
}

func (sp *StructPages) componentName(pc *parseContext, page *PageNode, r *http.Request) (string, error) {
	if page.Config != nil {
		res, err := pc.callMethod(page, page.Config, reflect.ValueOf(r))
		if err != nil {
			return "", err
		}
		res, err = extractError(res)
		if err != nil {
			return "", err
		}
		if len(res) != 1 || res[0].Kind() != reflect.String {
			return "", fmt.Errorf("method %s must return a string", formatMethod(page.Config))
		}
		return res[0].String(), nil
	}
	if sp.defaultPageConfig != nil {
		return sp.defaultPageConfig(r)
	}
	return "Page", nil
}

// props calls <Component>Props, falling back to Props, and returns the
// arguments for the component method.
func (sp *StructPages) props(pc *parseContext, page *PageNode, component string, r *http.Request) ([]reflect.Value, error) {
	method := page.Props[component+"Props"]
	if method == nil {
		method = page.Props["Props"]
	}
	if method == nil {
		return nil, nil
	}
	res, err := pc.callMethod(page, method, reflect.ValueOf(r))
	if err != nil {
		return nil, err
	}
	return extractError(res)
}

// ServesGet reports whether the route answers GET requests.
func (r Route) ServesGet() bool {
	return servesGet(r.Method)
}
