package structpages

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func Test_mixedCase(t *testing.T) {
	tests := []struct {
		name string // description of this test case
		s    string
		want string
	}{
		{name: "Empty string", s: "", want: ""},
		{name: "Single word", s: "hello", want: "Hello"},
		{name: "Hyphenated words", s: "mobile-nav", want: "MobileNav"},
		{name: "Mixed case with hyphens", s: "hello-World", want: "HelloWorld"},
		{name: "Selector prefix", s: "#mobile-nav", want: "MobileNav"},
		{name: "Double hyphen", s: "a--b", want: "AB"},
		{name: "Spaces are rejected", s: "hello world", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mixedCase(tt.s)
			if diff := cmp.Diff(got, tt.want); diff != "" {
				t.Errorf("mixedCase() mismatch (-got +want):\n%s", diff)
			}
		})
	}
}

func TestHTMXPageConfigSelection(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{name: "plain request", want: "Page"},
		{name: "htmx without target", headers: map[string]string{"HX-Request": "true"}, want: "Page"},
		{name: "target without htmx", headers: map[string]string{"HX-Target": "mobile-nav"}, want: "Page"},
		{name: "htmx with target", headers: map[string]string{"HX-Request": "true", "HX-Target": "mobile-nav"}, want: "MobileNav"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			got, err := HTMXPageConfig(req)
			if err != nil {
				t.Fatalf("HTMXPageConfig() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("HTMXPageConfig() = %q, want %q", got, tt.want)
			}
		})
	}
}
