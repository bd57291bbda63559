package structpages

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jackielii/ctxkey"
)

// ErrNoPageNode is returned by URLFor when no mounted page matches.
var ErrNoPageNode = errors.New("urlfor: no page node found")

var pcCtx = ctxkey.New[*parseContext]("structpages.parseContext", nil)

func withParseContext(pc *parseContext) MiddlewareFunc {
	return func(next http.Handler, node *PageNode) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := pcCtx.WithValue(r.Context(), pc)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// URLFor returns the URL for a given page type. If args is provided, it'll
// replace the path parameters, either positionally or from a single
// map[string]any. Supported format is similar to http.ServeMux.
//
// If multiple page type matches are found, the first one is returned.
// A func(*PageNode) bool can be passed as page to match a specific node.
func URLFor(ctx context.Context, page any, args ...any) (string, error) {
	pc := pcCtx.Value(ctx)
	if pc == nil {
		return "", errors.New("urlfor: parse context not found in context")
	}
	pattern, err := pc.urlFor(page)
	if err != nil {
		return "", err
	}
	path, err := formatPathSegments(pattern, args...)
	if err != nil {
		return "", fmt.Errorf("urlfor: %w", err)
	}
	return strings.Replace(path, "{$}", "", 1), nil
}

func formatPathSegments(pattern string, args ...any) (string, error) {
	segments, err := parseSegments(pattern)
	if err != nil {
		return pattern, err
	}
	var params []int
	for i, seg := range segments {
		if seg.param {
			params = append(params, i)
		}
	}
	if len(params) == 0 {
		return pattern, nil
	}
	if len(args) == 1 {
		if m, ok := args[0].(map[string]any); ok {
			for _, idx := range params {
				v, ok := m[segments[idx].name]
				if !ok {
					return pattern, fmt.Errorf("pattern %s: argument %s not found in provided args", pattern, segments[idx].name)
				}
				segments[idx].value = fmt.Sprint(v)
			}
			return joinSegments(segments), nil
		}
	}
	if len(args) != len(params) {
		return pattern, fmt.Errorf("pattern %s: expected %d arguments, got %d", pattern, len(params), len(args))
	}
	for i, idx := range params {
		segments[idx].value = fmt.Sprint(args[i])
	}
	return joinSegments(segments), nil
}

type segment struct {
	name  string
	param bool
	value string
}

func joinSegments(segments []segment) string {
	var sb strings.Builder
	for _, seg := range segments {
		if seg.param {
			sb.WriteString(seg.value)
		} else {
			sb.WriteString(seg.name)
		}
	}
	return sb.String()
}

func parseSegments(pattern string) (segments []segment, err error) {
	rest := pattern
	for rest != "" {
		start := strings.Index(rest, "{")
		if start == -1 {
			segments = append(segments, segment{name: rest})
			break
		}
		if start > 0 {
			segments = append(segments, segment{name: rest[:start]})
		}
		rest = rest[start+1:] // move over the '{'
		end := strings.Index(rest, "}")
		if end == -1 {
			return nil, fmt.Errorf("pattern %s: unmatched {", pattern)
		}
		name := rest[:end]
		rest = rest[end+1:]
		if name == "$" {
			segments = append(segments, segment{name: "{$}"})
			continue
		}
		name = strings.TrimSuffix(name, "...")
		segments = append(segments, segment{name: name, param: true})
	}
	return segments, nil
}
