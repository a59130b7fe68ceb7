package httpkit

import (
	"net/http"
)

type route struct {
	verb string
	path string
	h    http.Handler
}

// fakeRouter records registrations; Route and Group pass itself as the subrouter
type fakeRouter struct {
	prefixes  []string
	useCalls  int
	lastMWLen int
	routes    []route
}

func (f *fakeRouter) add(verb, path string, h http.Handler) {
	f.routes = append(f.routes, route{verb, path, h})
}

func (f *fakeRouter) Get(p string, h Handler)    { f.add(http.MethodGet, p, http.HandlerFunc(h)) }
func (f *fakeRouter) Post(p string, h Handler)   { f.add(http.MethodPost, p, http.HandlerFunc(h)) }
func (f *fakeRouter) Put(p string, h Handler)    { f.add(http.MethodPut, p, http.HandlerFunc(h)) }
func (f *fakeRouter) Delete(p string, h Handler) { f.add(http.MethodDelete, p, http.HandlerFunc(h)) }
func (f *fakeRouter) Handle(p string, h http.Handler) { f.add("HANDLE", p, h) }
func (f *fakeRouter) Mux() http.Handler               { return http.NewServeMux() }
func (f *fakeRouter) Group(fn func(Router))           { fn(f) }

func (f *fakeRouter) Use(mw ...func(http.Handler) http.Handler) {
	f.useCalls++
	f.lastMWLen = len(mw)
}

func (f *fakeRouter) Route(prefix string, fn func(Router)) {
	f.prefixes = append(f.prefixes, prefix)
	fn(f)
}
