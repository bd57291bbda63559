// Package sitemap describes the site's pages for search-engine crawlers.
package sitemap

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the domain the site is published under.
const DefaultBaseURL = "https://testingcanx.com"

// ChangeFrequency hints how often a page is expected to change.
type ChangeFrequency string

const (
	Daily  ChangeFrequency = "daily"
	Weekly ChangeFrequency = "weekly"
)

// Routes are the paths listed in the sitemap. The empty path is the root.
var Routes = []string{
	"",
	"/docs",
	"/docs/installation",
	"/docs/components/badge",
	"/docs/components/input",
	"/docs/components/label",
}

type Entry struct {
	URL             string
	LastModified    time.Time
	ChangeFrequency ChangeFrequency
	Priority        float64
}

type Generator struct {
	baseURL string
	routes  []string
	now     func() time.Time
}

type Option func(*Generator)

// WithClock replaces time.Now as the source of LastModified.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// WithRoutes replaces the default route list.
func WithRoutes(routes ...string) Option {
	return func(g *Generator) {
		g.routes = routes
	}
}

func NewGenerator(baseURL string, opts ...Option) *Generator {
	g := &Generator{
		baseURL: strings.TrimRight(baseURL, "/"),
		routes:  Routes,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Classify returns the change frequency and priority for a route path.
func Classify(path string) (ChangeFrequency, float64) {
	switch {
	case path == "":
		return Daily, 1.0
	case strings.HasPrefix(path, "/docs"):
		return Weekly, 0.8
	default:
		return Weekly, 0.6
	}
}

// Entries returns one entry per distinct route, in route order. All entries
// share the same LastModified.
func (g *Generator) Entries() []Entry {
	now := g.now()
	seen := make(map[string]bool, len(g.routes))
	entries := make([]Entry, 0, len(g.routes))
	for _, route := range g.routes {
		route = normalize(route)
		if seen[route] {
			continue
		}
		seen[route] = true
		freq, priority := Classify(route)
		entries = append(entries, Entry{
			URL:             g.baseURL + route,
			LastModified:    now,
			ChangeFrequency: freq,
			Priority:        priority,
		})
	}
	return entries
}

// normalize maps a route to its canonical form: a leading slash, no
// trailing slash, and "" for the root.
func normalize(route string) string {
	route = strings.TrimRight(route, "/")
	if route == "" {
		return ""
	}
	if !strings.HasPrefix(route, "/") {
		route = "/" + route
	}
	return route
}

type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []url    `xml:"url"`
}

type url struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// WriteXML writes the entries as a sitemaps.org urlset.
func (g *Generator) WriteXML(w io.Writer) error {
	set := urlSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, e := range g.Entries() {
		set.URLs = append(set.URLs, url{
			Loc:        e.URL,
			LastMod:    e.LastModified.UTC().Format(time.RFC3339),
			ChangeFreq: string(e.ChangeFrequency),
			Priority:   strconv.FormatFloat(e.Priority, 'f', 1, 64),
		})
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("encode sitemap: %w", err)
	}
	return enc.Close()
}
