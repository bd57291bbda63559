package site

import (
	"bytes"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/testingcanx/docsite/internal/config"
	"github.com/testingcanx/docsite/internal/sitemap"
	"github.com/testingcanx/docsite/internal/ui"
)

type (
	sitemapPage struct{}
	robotsPage  struct{}
)

func (sitemapPage) ServeHTTP(w http.ResponseWriter, r *http.Request, g *sitemap.Generator) error {
	var buf bytes.Buffer
	if err := g.WriteXML(&buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, err := buf.WriteTo(w)
	return err
}

func (robotsPage) ServeHTTP(w http.ResponseWriter, r *http.Request, cfg *config.Config) error {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, err := fmt.Fprintf(w, "User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", cfg.BaseURL)
	return err
}

// notFound renders the 404 page. It is served by the router, outside the
// page tree, so render errors are logged here.
func notFound(cfg *config.Config, logger *zap.Logger, home string) http.HandlerFunc {
	page := ui.Document(
		ui.DocumentProps{Title: "Not Found", SiteTitle: cfg.SiteTitle},
		ui.NotFound(home),
	)
	return func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		if err := page.Render(r.Context(), &buf); err != nil {
			logger.Error("not found page error",
				zap.Error(err),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
			)
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		_, _ = buf.WriteTo(w)
	}
}
