package modkit

import (
	"net/http"
	"testing"

	phttp "draftforge/internal/platform/net/http"
)

func TestWithName(t *testing.T) {
	t.Parallel()
	var c buildCfg
	WithName("hook")(&c)
	if c.name != "hook" {
		t.Fatalf("expected name=hook got=%q", c.name)
	}
}

func TestWithPrefix(t *testing.T) {
	t.Parallel()
	var c buildCfg
	WithPrefix("/meta")(&c)
	if c.prefix != "/meta" {
		t.Fatalf("expected prefix=/meta got=%q", c.prefix)
	}
}

func TestWithMiddlewaresAccumulatesAndOrder(t *testing.T) {
	t.Parallel()

	log := []string{}
	mw := func(tag string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				log = append(log, tag)
				if next != nil {
					next.ServeHTTP(w, r)
				}
			})
		}
	}

	var c buildCfg
	WithMiddlewares(mw("a"), mw("b"))(&c)
	WithMiddlewares(mw("c"))(&c)

	if len(c.mw) != 3 {
		t.Fatalf("expected 3 middlewares got=%d", len(c.mw))
	}

	// first added runs first
	var h http.Handler = http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})
	for i := len(c.mw) - 1; i >= 0; i-- {
		h = c.mw[i](h)
	}
	h.ServeHTTP(nil, nil)

	want := []string{"a", "b", "c"}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("middleware order mismatch at %d: got=%q want=%q", i, log[i], want[i])
		}
	}
}

func TestWithPortsStoresConcreteType(t *testing.T) {
	t.Parallel()

	type Ports struct {
		Hello string
		N     int
	}

	var c buildCfg
	WithPorts(Ports{Hello: "world", N: 7})(&c)

	ps, ok := c.ports.(Ports)
	if !ok {
		t.Fatalf("expected ports of type Ports got %T", c.ports)
	}
	if ps.Hello != "world" || ps.N != 7 {
		t.Fatalf("unexpected ports value: %+v", ps)
	}
}

func TestWithRegisterSetsAndCalls(t *testing.T) {
	t.Parallel()

	var c buildCfg
	called := false

	WithRegister(func(phttp.Router) { called = true })(&c)

	if c.register == nil {
		t.Fatal("expected register to be set")
	}
	c.register(nil)
	if !called {
		t.Fatal("expected register function to be called")
	}
}

func TestBuildDefaultsRegister(t *testing.T) {
	t.Parallel()

	b := Build(WithName("x"))
	if b.Register == nil {
		t.Fatal("expected a no-op register default")
	}
	// must be callable without panicking
	b.Register(nil)
}

func TestBuildComposes(t *testing.T) {
	t.Parallel()

	mw := func(next http.Handler) http.Handler { return next }
	b := Build(
		WithName("answers"),
		WithPrefix("/a"),
		WithMiddlewares(mw),
		WithPorts(map[string]int{"ok": 1}),
	)

	if b.Name != "answers" || b.Prefix != "/a" {
		t.Fatalf("unexpected built: %+v", b)
	}
	if len(b.Mw) != 1 {
		t.Fatalf("expected 1 middleware got=%d", len(b.Mw))
	}
	if _, ok := b.Ports.(map[string]int); !ok {
		t.Fatalf("expected ports map[string]int got %T", b.Ports)
	}
}
