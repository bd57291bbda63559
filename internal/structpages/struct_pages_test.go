//lint:file-ignore U1000 Ignore unused code in test file

package structpages

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/google/go-cmp/cmp"
)

type testComponent struct {
	content string
}

func (t testComponent) Render(ctx context.Context, w io.Writer) error {
	_, err := w.Write([]byte(t.content))
	return err
}

type TestHandlerPage struct{}

func (TestHandlerPage) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("TestHttpHandler"))
}

func TestHttpHandler(t *testing.T) {
	type topPage struct {
		s TestHandlerPage  `route:"/struct Test struct handler"`
		p *TestHandlerPage `route:"POST /pointer Test pointer handler"`
	}

	r := NewRouter(http.NewServeMux())
	sp := New()
	if err := sp.MountPages(r, &topPage{}, "/", ""); err != nil {
		t.Fatalf("MountPages failed: %v", err)
	}

	{
		req := httptest.NewRequest(http.MethodGet, "/struct", http.NoBody)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
		}
		if rec.Body.String() != "TestHttpHandler" {
			t.Errorf("expected body %q, got %q", "TestHttpHandler", rec.Body.String())
		}
	}
	{
		req := httptest.NewRequest(http.MethodPost, "/pointer", http.NoBody)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
		}
	}
	{
		req := httptest.NewRequest(http.MethodGet, "/pointer", http.NoBody)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("expected status %d, got %d", http.StatusMethodNotAllowed, rec.Code)
		}
	}
}

type greeting struct{ Text string }

type injectedHandlerPage struct{}

func (injectedHandlerPage) ServeHTTP(w http.ResponseWriter, r *http.Request, g *greeting) error {
	if g.Text == "" {
		return errors.New("empty greeting")
	}
	_, err := w.Write([]byte(g.Text))
	return err
}

func TestHandlerWithInjectedArgs(t *testing.T) {
	type topPage struct {
		h injectedHandlerPage `route:"GET /hello Hello"`
	}
	for _, tt := range []struct {
		name       string
		greeting   *greeting
		wantStatus int
		wantBody   string
	}{
		{name: "writes injected value", greeting: &greeting{Text: "hi there"}, wantStatus: http.StatusOK, wantBody: "hi there"},
		{name: "error goes to error handler", greeting: &greeting{}, wantStatus: http.StatusTeapot, wantBody: "empty greeting"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRouter(http.NewServeMux())
			sp := New(WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
				http.Error(w, err.Error(), http.StatusTeapot)
			}))
			if err := sp.MountPages(r, topPage{}, "/", "", tt.greeting); err != nil {
				t.Fatalf("MountPages failed: %v", err)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/hello", http.NoBody))
			if rec.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			if got := strings.TrimSpace(rec.Body.String()); got != tt.wantBody {
				t.Errorf("expected body %q, got %q", tt.wantBody, got)
			}
		})
	}
}

type missingArgHandler struct{}

func (missingArgHandler) ServeHTTP(w http.ResponseWriter, r *http.Request, g *greeting) {}

func TestHandlerMissingArg(t *testing.T) {
	type topPage struct {
		h missingArgHandler `route:"GET /missing Missing"`
	}
	var gotErr error
	r := NewRouter(http.NewServeMux())
	sp := New(WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
		gotErr = err
		w.WriteHeader(http.StatusInternalServerError)
	}))
	if err := sp.MountPages(r, topPage{}, "/", ""); err != nil {
		t.Fatalf("MountPages failed: %v", err)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", http.NoBody))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
	}
	if gotErr == nil || !strings.Contains(gotErr.Error(), "requires argument of type *structpages.greeting") {
		t.Errorf("unexpected error: %v", gotErr)
	}
}

type middlewarePages struct {
	middlewareChildPage `route:"/child Child"`
}

type middlewareChildPage struct{}

func (middlewareChildPage) Page() templ.Component {
	return testComponent{content: "Test middleware child page"}
}

func (middlewarePages) Middlewares() []MiddlewareFunc {
	return []MiddlewareFunc{
		func(next http.Handler, node *PageNode) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("X-Test-Middleware", "foobar")
				next.ServeHTTP(w, r)
			})
		},
	}
}

func (middlewarePages) Page() templ.Component {
	return testComponent{content: "Test middleware handler"}
}

func TestMiddlewares(t *testing.T) {
	type topPage struct {
		middlewarePages `route:"/middleware Test middleware handler"`
	}
	r := NewRouter(http.NewServeMux())
	sp := New()
	if err := sp.MountPages(r, &topPage{}, "/", "top page"); err != nil {
		t.Fatalf("MountPages failed: %v", err)
	}
	for _, tt := range []struct {
		path string
		body string
	}{
		{path: "/middleware", body: "Test middleware handler"},
		// child pages inherit the parent's middlewares
		{path: "/middleware/child", body: "Test middleware child page"},
	} {
		req := httptest.NewRequest(http.MethodGet, tt.path, http.NoBody)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: expected status %d, got %d", tt.path, http.StatusOK, rec.Code)
		}
		if rec.Header().Get("X-Test-Middleware") != "foobar" {
			t.Errorf("%s: expected header X-Test-Middleware to be 'foobar', got %s", tt.path, rec.Header().Get("X-Test-Middleware"))
		}
		if rec.Body.String() != tt.body {
			t.Errorf("%s: expected body %q, got %q", tt.path, tt.body, rec.Body.String())
		}
	}
}

type DefaultConfigPage struct{}

func (DefaultConfigPage) Page() templ.Component {
	return testComponent{content: "Default config page"}
}

func (DefaultConfigPage) HxTarget() templ.Component {
	return testComponent{content: "hx target defaultConfigPage"}
}

func TestPageConfig(t *testing.T) {
	sp := New()
	r := NewRouter(http.NewServeMux())
	type topPage struct {
		DefaultConfigPage `route:"/default Default config page"`
	}
	if err := sp.MountPages(r, &topPage{}, "/", "top page"); err != nil {
		t.Fatalf("MountPages failed: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/default", http.NoBody)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if rec.Body.String() != "Default config page" {
		t.Errorf("expected body %q, got %q", "Default config page", rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Errorf("unexpected content type %q", got)
	}
}

func TestHTMXPageConfig(t *testing.T) {
	sp := New(WithDefaultPageConfig(HTMXPageConfig))
	r := NewRouter(http.NewServeMux())
	type topPage struct {
		DefaultConfigPage `route:"/default Default config page"`
	}
	if err := sp.MountPages(r, &topPage{}, "/", "top page"); err != nil {
		t.Fatalf("MountPages failed: %v", err)
	}

	tests := []struct {
		name         string
		hxTarget     string
		expectedBody string
		retarget     string
	}{
		{name: "matching target", hxTarget: "hx-target", expectedBody: "hx target defaultConfigPage"},
		{name: "unknown target falls back to page", hxTarget: "sidebar", expectedBody: "Default config page", retarget: "body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/default", http.NoBody)
			req.Header.Set("Hx-Request", "true")
			req.Header.Set("Hx-Target", tt.hxTarget)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			if rec.Code != http.StatusOK {
				t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
			}
			if rec.Body.String() != tt.expectedBody {
				t.Errorf("expected body %q, got %q", tt.expectedBody, rec.Body.String())
			}
			if got := rec.Header().Get("HX-Retarget"); got != tt.retarget {
				t.Errorf("expected HX-Retarget %q, got %q", tt.retarget, got)
			}
		})
	}
}

type CustomConfigPage struct{}

func (CustomConfigPage) Page() templ.Component {
	return testComponent{content: "Page"}
}

func (CustomConfigPage) Custom() templ.Component {
	return testComponent{content: "Custom config page"}
}

func (CustomConfigPage) PageConfig(r *http.Request) (string, error) {
	return "Custom", nil
}

func TestCustomPageConfig(t *testing.T) {
	sp := New()
	r := NewRouter(http.NewServeMux())
	type topPage struct {
		CustomConfigPage `route:"/custom Custom config page"`
	}
	if err := sp.MountPages(r, &topPage{}, "/", "top page"); err != nil {
		t.Fatalf("MountPages failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/custom", http.NoBody)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	expectedBody := "Custom config page"
	if rec.Body.String() != expectedBody {
		t.Errorf("expected body %q, got %q", expectedBody, rec.Body.String())
	}
}

type middlewareOrderPage struct{}

func (middlewareOrderPage) Page() templ.Component {
	return testComponent{content: "Middleware Order Page\n"}
}

func (middlewareOrderPage) Middlewares() []MiddlewareFunc {
	return []MiddlewareFunc{
		makeMiddleware("page mw 1"),
		makeMiddleware("page mw 2"),
		makeMiddleware("page mw 3"),
	}
}

func makeMiddleware(name string) MiddlewareFunc {
	return func(next http.Handler, node *PageNode) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("Middleware before: " + name + "\n"))
			next.ServeHTTP(w, r)
			_, _ = w.Write([]byte("Middleware after: " + name + "\n"))
		})
	}
}

func TestMiddlewareOrder(t *testing.T) {
	sp := New(
		WithMiddlewares(
			makeMiddleware("global mw 1"),
			makeMiddleware("global mw 2"),
			makeMiddleware("global mw 3"),
		),
	)
	r := NewRouter(http.NewServeMux())
	type topPage struct {
		middlewareOrderPage `route:"/order"`
	}
	if err := sp.MountPages(r, &topPage{}, "/", "top page"); err != nil {
		t.Fatalf("MountPages failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/order", http.NoBody)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	expectedBody := `Middleware before: global mw 1
Middleware before: global mw 2
Middleware before: global mw 3
Middleware before: page mw 1
Middleware before: page mw 2
Middleware before: page mw 3
Middleware Order Page
Middleware after: page mw 3
Middleware after: page mw 2
Middleware after: page mw 1
Middleware after: global mw 3
Middleware after: global mw 2
Middleware after: global mw 1
`
	if diff := cmp.Diff(expectedBody, rec.Body.String()); diff != "" {
		t.Errorf("unexpected body (-want +got):\n%s", diff)
	}
}

type testPropsPage struct{}

func (testPropsPage) Page(s string) templ.Component       { return testComponent{content: s} }
func (testPropsPage) Content(s string) templ.Component    { return testComponent{content: s} }
func (testPropsPage) Another(s string) templ.Component    { return testComponent{content: s} }
func (testPropsPage) Props() (string, error)              { return "Default Props", nil }
func (testPropsPage) PageProps(r *http.Request) string    { return "Page Props" }
func (testPropsPage) ContentProps(r *http.Request) string { return "Content Props " + r.URL.Query().Get("q") }

func TestProps(t *testing.T) {
	sp := New(WithDefaultPageConfig(HTMXPageConfig))
	r := NewRouter(http.NewServeMux())
	type topPage struct {
		testPropsPage `route:"/props Test Props Page"`
	}
	if err := sp.MountPages(r, &topPage{}, "/", "top page"); err != nil {
		t.Fatalf("MountPages failed: %v", err)
	}

	tests := []struct {
		name         string
		hxTarget     string
		expectedBody string
	}{
		{
			name:         "Page Props",
			expectedBody: "Page Props",
		},
		{
			name:         "Content Props",
			hxTarget:     "content",
			expectedBody: "Content Props x",
		},
		{
			name:         "Another Props fallback to Props",
			hxTarget:     "another",
			expectedBody: "Default Props",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/props?q=x", http.NoBody)
			if tt.hxTarget != "" {
				req.Header.Set("Hx-Request", "true")
				req.Header.Set("Hx-Target", tt.hxTarget)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			if rec.Code != http.StatusOK {
				t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
			}
			if diff := cmp.Diff(tt.expectedBody, rec.Body.String()); diff != "" {
				t.Errorf("unexpected body (-want +got):\n%s", diff)
			}
		})
	}
}

type partialWriteErrorComponent struct{}

func (partialWriteErrorComponent) Render(ctx context.Context, w io.Writer) error {
	_, _ = w.Write([]byte("half a page"))
	return errors.New("render failed")
}

type partialWriteErrorPage struct{}

func (partialWriteErrorPage) Page() templ.Component { return partialWriteErrorComponent{} }

func TestComponentPartialWriteDiscardedOnError(t *testing.T) {
	type topPage struct {
		partialWriteErrorPage `route:"/broken Broken"`
	}
	var gotErr error
	sp := New(WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
		gotErr = err
		http.Error(w, "oops", http.StatusInternalServerError)
	}))
	r := NewRouter(http.NewServeMux())
	if err := sp.MountPages(r, topPage{}, "/", ""); err != nil {
		t.Fatalf("MountPages failed: %v", err)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/broken", http.NoBody))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
	}
	if strings.Contains(rec.Body.String(), "half a page") {
		t.Errorf("partial output leaked into response: %q", rec.Body.String())
	}
	if gotErr == nil || !strings.Contains(gotErr.Error(), "render failed") {
		t.Errorf("unexpected error: %v", gotErr)
	}
}

type noPageComponent struct{}

func (noPageComponent) Sidebar() templ.Component { return testComponent{} }

func TestMountPagesErrors(t *testing.T) {
	type missingPage struct {
		p noPageComponent `route:"/nopage No page"`
	}
	sp := New()
	err := sp.MountPages(NewRouter(http.NewServeMux()), missingPage{}, "/", "")
	if err == nil || !strings.Contains(err.Error(), "does not have a Page component") {
		t.Errorf("expected missing Page error, got %v", err)
	}

	err = sp.MountPages(NewRouter(http.NewServeMux()), "not a struct", "/", "")
	if err == nil || !strings.Contains(err.Error(), "expected a struct") {
		t.Errorf("expected struct error, got %v", err)
	}

	err = sp.MountPages(NewRouter(http.NewServeMux()), struct{}{}, "/", "", &greeting{}, &greeting{})
	if err == nil || !strings.Contains(err.Error(), "duplicate type") {
		t.Errorf("expected duplicate arg error, got %v", err)
	}
}

type groupOnly struct {
	leaf middlewareChildPage `route:"GET /leaf Leaf"`
}

func TestRoutes(t *testing.T) {
	type topPage struct {
		group groupOnly         `route:"/group Group"`
		h     TestHandlerPage   `route:"POST /submit Submit"`
		d     DefaultConfigPage `route:"GET /default Default"`
	}
	sp := New()
	if err := sp.MountPages(NewRouter(http.NewServeMux()), topPage{}, "/", "Top"); err != nil {
		t.Fatalf("MountPages failed: %v", err)
	}
	want := []Route{
		{Method: "GET", Path: "/group/leaf", Title: "Leaf", Name: "leaf"},
		{Method: "POST", Path: "/submit", Title: "Submit", Name: "h"},
		{Method: "GET", Path: "/default", Title: "Default", Name: "d"},
	}
	if diff := cmp.Diff(want, sp.Routes()); diff != "" {
		t.Errorf("unexpected routes (-want +got):\n%s", diff)
	}
	if roots := sp.Roots(); len(roots) != 1 || roots[0].Title != "Top" || len(roots[0].Children) != 3 {
		t.Errorf("unexpected roots: %v", roots)
	}

	var sb strings.Builder
	if err := sp.PrintRoutes(&sb); err != nil {
		t.Fatalf("PrintRoutes failed: %v", err)
	}
	for _, want := range []string{"METHOD", "/group/leaf", "Submit"} {
		if !strings.Contains(sb.String(), want) {
			t.Errorf("expected printed routes to contain %q:\n%s", want, sb.String())
		}
	}
}

func TestFormatMethod(t *testing.T) {
	tests := []struct {
		name     string
		setup    func() *reflect.Method
		expected string
	}{
		{
			name: "nil method",
			setup: func() *reflect.Method {
				return nil
			},
			expected: "<nil>",
		},
		{
			name: "value receiver",
			setup: func() *reflect.Method {
				method, _ := reflect.TypeOf(testComponent{}).MethodByName("Render")
				return &method
			},
			expected: "structpages.testComponent.Render",
		},
		{
			name: "pointer type",
			setup: func() *reflect.Method {
				method, _ := reflect.TypeOf(&testPropsPage{}).MethodByName("Page")
				return &method
			},
			expected: "*structpages.testPropsPage.Page",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := formatMethod(tt.setup())
			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}
