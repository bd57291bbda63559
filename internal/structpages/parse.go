package structpages

import (
	"cmp"
	"fmt"
	"net/http"
	"reflect"
	"runtime"
	"slices"
	"strings"

	"github.com/a-h/templ"
)

type parseContext struct {
	root *PageNode
	args argRegistry
}

func parsePageTree(route string, page any, args ...any) (*parseContext, error) {
	pc := &parseContext{args: make(argRegistry)}
	for _, v := range args {
		if err := pc.args.addArg(v); err != nil {
			return nil, fmt.Errorf("error adding argument to registry: %w", err)
		}
	}
	topNode, err := pc.parsePageTree(route, "", page)
	if err != nil {
		return nil, err
	}
	pc.root = topNode
	return pc, nil
}

func (p *parseContext) parsePageTree(route, fieldName string, page any) (*PageNode, error) {
	if page == nil {
		return nil, fmt.Errorf("page %q is nil", fieldName)
	}
	st := reflect.TypeOf(page) // struct type
	pv := reflect.ValueOf(page)
	if st.Kind() == reflect.Ptr {
		st = st.Elem()
	} else {
		// methods may have pointer receivers, keep an addressable copy
		ptr := reflect.New(st)
		ptr.Elem().Set(pv)
		pv = ptr
	}
	if st.Kind() != reflect.Struct {
		return nil, fmt.Errorf("page %s: expected a struct, got %s", cmp.Or(fieldName, st.String()), st.Kind())
	}
	pt := pv.Type() // pointer type

	item := &PageNode{Value: pv, Name: cmp.Or(fieldName, st.Name())}
	item.Method, item.Route, item.Title = parseTag(route)

	for i := range st.NumField() {
		field := st.Field(i)
		route, ok := field.Tag.Lookup("route")
		if !ok {
			continue
		}
		typ := field.Type
		if typ.Kind() == reflect.Ptr {
			typ = typ.Elem()
		}
		childPage := reflect.New(typ)
		childItem, err := p.parsePageTree(route, field.Name, childPage.Interface())
		if err != nil {
			return nil, err
		}
		childItem.Parent = item
		item.Children = append(item.Children, childItem)
	}

	// value receivers show up as autogenerated wrappers on the pointer type,
	// so both method sets are scanned and wrappers skipped
	for _, t := range []reflect.Type{st, pt} {
		for i := range t.NumMethod() {
			method := t.Method(i)
			if isPromotedMethod(&method) {
				continue
			}
			switch {
			case isComponent(&method):
				if item.Components == nil {
					item.Components = make(map[string]*reflect.Method)
				}
				item.Components[method.Name] = &method
			case strings.HasSuffix(method.Name, "Props"):
				if item.Props == nil {
					item.Props = make(map[string]*reflect.Method)
				}
				item.Props[method.Name] = &method
			case method.Name == "ServeHTTP":
				if !isHandlerMethod(&method) {
					return nil, fmt.Errorf("method %s must take (http.ResponseWriter, *http.Request) as its first arguments",
						formatMethod(&method))
				}
				item.Handler = &method
			case method.Name == "PageConfig":
				item.Config = &method
			case method.Name == "Middlewares":
				item.Middlewares = &method
			}
		}
	}

	return item, nil
}

// callMethod calls method with receiver pn.Value. Each parameter takes the
// first unused value from args assignable to it; the rest are filled with
// the current *PageNode or values from the argument registry.
func (p *parseContext) callMethod(pn *PageNode, method *reflect.Method,
	args ...reflect.Value) ([]reflect.Value, error) {
	v := pn.Value
	if method.Type.In(0).Kind() != reflect.Ptr {
		v = v.Elem()
	}
	in := make([]reflect.Value, method.Type.NumIn())
	in[0] = v
	used := make([]bool, len(args))
	pnv := reflect.ValueOf(pn)
	for i := 1; i < len(in); i++ {
		argType := method.Type.In(i)
		if val, ok := takeArg(args, used, argType); ok {
			in[i] = val
			continue
		}
		switch argType {
		case pnv.Type():
			in[i] = pnv
		case pnv.Type().Elem():
			in[i] = pnv.Elem()
		default:
			val, ok := p.args.getArg(argType)
			if !ok {
				return nil, fmt.Errorf("method %s requires argument of type %s, but not found",
					formatMethod(method), argType.String())
			}
			in[i] = val
		}
	}
	return method.Func.Call(in), nil
}

func takeArg(args []reflect.Value, used []bool, typ reflect.Type) (reflect.Value, bool) {
	for i, arg := range args {
		if used[i] || !arg.IsValid() {
			continue
		}
		if arg.Type().AssignableTo(typ) {
			used[i] = true
			return arg, true
		}
	}
	return reflect.Value{}, false
}

func (p *parseContext) callComponentMethod(pn *PageNode, method *reflect.Method,
	args ...reflect.Value) (templ.Component, error) {
	results, err := p.callMethod(pn, method, args...)
	if err != nil {
		return nil, fmt.Errorf("error calling component method %s: %w", formatMethod(method), err)
	}
	if len(results) != 1 {
		return nil, fmt.Errorf("method %s must return a single result, got %d", formatMethod(method), len(results))
	}
	comp, ok := results[0].Interface().(templ.Component)
	if !ok || comp == nil {
		return nil, fmt.Errorf("method %s returned a nil component", formatMethod(method))
	}
	return comp, nil
}

func (p *parseContext) urlFor(v any) (string, error) {
	if f, ok := v.(func(*PageNode) bool); ok {
		for node := range p.root.All() {
			if f(node) {
				return node.FullRoute(), nil
			}
		}
		return "", fmt.Errorf("%w: no node matched predicate", ErrNoPageNode)
	}
	if node := p.root.Lookup(v); node != nil {
		return node.FullRoute(), nil
	}
	return "", fmt.Errorf("%w: %T", ErrNoPageNode, v)
}

func pointerType(v reflect.Type) reflect.Type {
	if v.Kind() == reflect.Ptr {
		return v
	}
	return reflect.PointerTo(v)
}

func parseTag(route string) (method, path, title string) {
	method = methodAll
	parts := strings.Fields(route)
	if len(parts) == 0 {
		path = "/"
		return
	}
	if len(parts) == 1 {
		path = parts[0]
		return
	}
	if m := strings.ToUpper(parts[0]); slices.Contains(validMethod, m) {
		method = m
		path = parts[1]
		title = strings.Join(parts[2:], " ")
	} else {
		path = parts[0]
		title = strings.Join(parts[1:], " ")
	}
	return
}

const methodAll = "ALL"

var validMethod = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodConnect,
	http.MethodOptions,
	http.MethodTrace,
	methodAll,
}

var (
	componentType      = reflect.TypeOf((*templ.Component)(nil)).Elem()
	errorType          = reflect.TypeOf((*error)(nil)).Elem()
	responseWriterType = reflect.TypeOf((*http.ResponseWriter)(nil)).Elem()
	requestType        = reflect.TypeOf((*http.Request)(nil))
)

func isComponent(t *reflect.Method) bool {
	if t.Type.NumOut() != 1 {
		return false
	}
	return t.Type.Out(0).Implements(componentType)
}

func isHandlerMethod(t *reflect.Method) bool {
	return t.Type.NumIn() >= 3 &&
		t.Type.In(1) == responseWriterType &&
		t.Type.In(2) == requestType
}

func isPromotedMethod(method *reflect.Method) bool {
	// Check if the method is promoted from an embedded type
	// https://github.com/golang/go/issues/73883
	wPC := method.Func.Pointer()
	wFunc := runtime.FuncForPC(wPC)
	wFile, wLine := wFunc.FileLine(wPC)
	return wFile == "<autogenerated>" && wLine == 1
}

func extractError(args []reflect.Value) ([]reflect.Value, error) {
	if len(args) >= 1 && args[len(args)-1].Type() == errorType {
		i := args[len(args)-1].Interface()
		args = args[:len(args)-1]
		if i == nil {
			return args, nil
		}
		return args, i.(error)
	}
	return args, nil
}

func formatMethod(method *reflect.Method) string {
	if method == nil || method.Func == (reflect.Value{}) {
		return "<nil>"
	}
	return fmt.Sprintf("%s.%s", method.Type.In(0).String(), method.Name)
}
