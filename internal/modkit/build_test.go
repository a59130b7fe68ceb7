package modkit

import (
	"net/http"
	"reflect"
	"testing"

	"lostfound/internal/modkit/httpkit"
)

func TestBuild_Defaults(t *testing.T) {
	t.Parallel()

	b := Build()
	if b.Name != "" || b.Prefix != "" || b.Ports != nil || len(b.Mw) != 0 {
		t.Fatalf("unexpected defaults %+v", b)
	}
	// default Register is a no op and must not panic on a nil router
	b.Register(nil)
}

func TestBuild_WithOptionsAndCopySemantics(t *testing.T) {
	t.Parallel()

	fnPtr := func(f func(http.Handler) http.Handler) uintptr { return reflect.ValueOf(f).Pointer() }

	mwA := func(next http.Handler) http.Handler { return next }
	mwB := func(next http.Handler) http.Handler { return next }
	mid := []func(http.Handler) http.Handler{mwA, mwB}

	type ports struct{ X int }
	regCalled := 0

	b := Build(
		WithName("items"),
		WithPrefix("/found-items"),
		WithMiddlewares(mid...),
		WithPorts(ports{X: 7}),
		WithRegister(func(httpkit.Router) { regCalled++ }),
	)

	if b.Name != "items" || b.Prefix != "/found-items" {
		t.Fatalf("name/prefix = %q %q", b.Name, b.Prefix)
	}
	if got, ok := b.Ports.(ports); !ok || got.X != 7 {
		t.Fatalf("ports = %#v", b.Ports)
	}

	mid[0] = func(next http.Handler) http.Handler { return next }
	if len(b.Mw) != 2 || fnPtr(b.Mw[0]) != fnPtr(mwA) || fnPtr(b.Mw[1]) != fnPtr(mwB) {
		t.Fatalf("Mw not copied in order")
	}

	b.Register(nil)
	if regCalled != 1 {
		t.Fatalf("register calls = %d", regCalled)
	}
}
