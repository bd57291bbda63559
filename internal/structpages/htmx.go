package structpages

import (
	"net/http"
	"strings"

	"github.com/angelofallars/htmx-go"
)

// HTMXPageConfig is a page configuration function designed for HTMX integration.
// It selects the component method based on the HX-Target header.
//
// When an HTMX request is detected, it converts the HX-Target value to a
// method name. For example:
//   - HX-Target: "content" -> calls Content() method
//   - HX-Target: "mobile-nav" -> calls MobileNav() method
//   - No HX-Target or non-HTMX request -> calls Page() method
//
// Pages that don't have the selected method fall back to Page, and the
// response is retargeted to the body.
func HTMXPageConfig(r *http.Request) (string, error) {
	if htmx.IsHTMX(r) {
		if target, ok := htmx.GetTarget(r); ok && target != "" {
			return mixedCase(target), nil
		}
	}
	return "Page", nil
}

// mixedCase turns an element id like "mobile-nav" into "MobileNav".
func mixedCase(s string) string {
	if s == "" {
		return s
	}
	s = strings.TrimPrefix(s, "#")
	if strings.Contains(s, " ") {
		return ""
	}
	parts := strings.Split(s, "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, "")
}
