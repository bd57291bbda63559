// Package site is the documentation site: its page tree, content and the
// HTTP handler serving it.
package site

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/testingcanx/docsite/internal/config"
	"github.com/testingcanx/docsite/internal/logging"
	"github.com/testingcanx/docsite/internal/sitemap"
	"github.com/testingcanx/docsite/internal/structpages"
)

type Site struct {
	Handler http.Handler
	Pages   *structpages.StructPages
	Sitemap *sitemap.Generator
}

type options struct {
	now func() time.Time
}

type Option func(*options)

// WithClock sets the clock used for sitemap timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// New mounts the page tree on a chi router with request logging.
func New(cfg *config.Config, logger *zap.Logger, opts ...Option) (*Site, error) {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(logging.Middleware(logger))

	gen := sitemap.NewGenerator(cfg.BaseURL, sitemap.WithClock(o.now))
	sp := structpages.New(
		structpages.WithDefaultPageConfig(structpages.HTMXPageConfig),
		structpages.WithErrorHandler(logging.ErrorHandler(logger)),
		structpages.WithMiddlewares(varyOnHTMX),
	)
	if err := sp.MountPages(structpages.NewChiRouter(r), index{}, "GET /", cfg.SiteTitle, cfg, gen); err != nil {
		return nil, err
	}
	docs := sp.Roots()[0].Lookup(docsPage{})
	r.NotFound(notFound(cfg, logger, docs.FullRoute()))

	return &Site{Handler: r, Pages: sp, Sitemap: gen}, nil
}

// varyOnHTMX keeps caches from mixing up full pages and htmx fragments.
func varyOnHTMX(next http.Handler, _ *structpages.PageNode) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "HX-Request")
		w.Header().Add("Vary", "HX-Target")
		next.ServeHTTP(w, r)
	})
}
