// Package export renders the site to static files.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/testingcanx/docsite/internal/structpages"
)

// ErrUnsafeOutputDir is returned for output directories Export refuses to
// clear.
var ErrUnsafeOutputDir = errors.New("unsafe output directory")

// Export requests every GET route from handler and writes the responses
// below outputDir, which is cleared first. It returns the written files
// relative to outputDir.
func Export(handler http.Handler, routes []structpages.Route, outputDir string, logger *zap.Logger) ([]string, error) {
	if err := checkOutputDir(outputDir); err != nil {
		return nil, err
	}
	logger.Info("cleaning output directory", zap.String("dir", outputDir))
	if err := os.RemoveAll(outputDir); err != nil {
		return nil, fmt.Errorf("failed to remove output directory '%s': %w", outputDir, err)
	}
	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create output directory '%s': %w", outputDir, err)
	}

	var written []string
	for _, route := range routes {
		if !route.ServesGet() {
			continue
		}
		body, err := render(handler, route.Path)
		if err != nil {
			return written, fmt.Errorf("route %s: %w", route.Path, err)
		}
		name := FileName(route.Path)
		dest := filepath.Join(outputDir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(dest), os.ModePerm); err != nil {
			return written, fmt.Errorf("route %s: %w", route.Path, err)
		}
		if err := os.WriteFile(dest, body, 0o644); err != nil {
			return written, fmt.Errorf("route %s: %w", route.Path, err)
		}
		logger.Debug("page written", zap.String("route", route.Path), zap.String("file", name), zap.Int("bytes", len(body)))
		written = append(written, name)
	}
	logger.Info("export finished", zap.String("dir", outputDir), zap.Int("files", len(written)))
	return written, nil
}

// FileName maps a route to the file serving it on a static host:
// "/docs/installation" becomes "docs/installation/index.html" while routes
// with an extension such as "/sitemap.xml" keep their name.
func FileName(route string) string {
	p := path.Clean("/" + route)
	if p == "/" {
		return "index.html"
	}
	if path.Ext(p) != "" {
		return p[1:]
	}
	return p[1:] + "/index.html"
}

func render(handler http.Handler, route string) ([]byte, error) {
	req := httptest.NewRequest(http.MethodGet, route, http.NoBody)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", rec.Code)
	}
	return bytes.Clone(rec.Body.Bytes()), nil
}

// checkOutputDir refuses the filesystem root, the home directory and any
// directory containing the working directory.
func checkOutputDir(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve output directory '%s': %w", dir, err)
	}
	if abs == filepath.VolumeName(abs)+string(filepath.Separator) {
		return fmt.Errorf("%w: '%s' is the filesystem root", ErrUnsafeOutputDir, dir)
	}
	if home, err := os.UserHomeDir(); err == nil && abs == filepath.Clean(home) {
		return fmt.Errorf("%w: '%s' is the home directory", ErrUnsafeOutputDir, dir)
	}
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	if contains(abs, wd) {
		return fmt.Errorf("%w: '%s' contains the working directory", ErrUnsafeOutputDir, dir)
	}
	return nil
}

// contains reports whether path is dir or below it.
func contains(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
