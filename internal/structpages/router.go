package structpages

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Router is an interface for registering HTTP routes.
// Routes are registered with their full path, so implementations don't need
// to support nested groups.
type Router interface {
	HandleMethod(method, path string, handler http.Handler)
}

// StdRouter registers pages on an [http.ServeMux].
type StdRouter struct {
	mux *http.ServeMux
}

// NewRouter creates a new router that wraps http.ServeMux.
// If mux is nil, it uses http.DefaultServeMux.
func NewRouter(mux *http.ServeMux) *StdRouter {
	if mux == nil {
		mux = http.DefaultServeMux
	}
	return &StdRouter{mux: mux}
}

func (r *StdRouter) HandleMethod(method, pattern string, handler http.Handler) {
	// "/" is a catch-all for ServeMux, the page only owns the exact root
	if pattern == "/" {
		pattern = "/{$}"
	}
	if method != methodAll && method != "" {
		pattern = method + " " + pattern
	}
	r.mux.Handle(pattern, handler)
}

func (r *StdRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// ChiRouter registers pages on a chi router.
type ChiRouter struct {
	router chi.Router
}

func NewChiRouter(r chi.Router) *ChiRouter {
	return &ChiRouter{router: r}
}

func (r *ChiRouter) HandleMethod(method, path string, handler http.Handler) {
	if method == methodAll || method == "" {
		r.router.Handle(path, handler)
	} else {
		r.router.Method(method, path, handler)
	}
}

func (r *ChiRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}
