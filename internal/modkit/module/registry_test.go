package module

import (
	"sync"
	"testing"

	phttp "draftforge/internal/platform/net/http"
)

type portSet struct {
	Name string
	ID   int
}

// fakeModule carries a fixed port set for MustPortsOf checks
type fakeModule struct {
	name  string
	ports any
}

func (f fakeModule) MountRoutes(phttp.Router) {}
func (f fakeModule) Ports() any               { return f.ports }
func (f fakeModule) Name() string             { return f.name }

func TestRegisterAndPortsAs(t *testing.T) {
	Reset()

	want := portSet{Name: "pages", ID: 1}
	Register("pages", want)

	got, ok := PortsAs[portSet]("pages")
	if !ok {
		t.Fatal("expected ok for existing name")
	}
	if got != want {
		t.Fatalf("unexpected value got=%v want=%v", got, want)
	}
}

func TestPortsAsMissingReturnsZeroAndFalse(t *testing.T) {
	Reset()

	got, ok := PortsAs[portSet]("missing")
	if ok {
		t.Fatal("expected ok=false for missing name")
	}
	if got != (portSet{}) {
		t.Fatalf("expected zero value got=%v", got)
	}
}

func TestPortsAsTypeMismatchReturnsFalse(t *testing.T) {
	Reset()

	Register("pages", portSet{Name: "pages", ID: 2})

	if _, ok := PortsAs[int]("pages"); ok {
		t.Fatal("expected ok=false for type mismatch")
	}
}

func TestResetClearsAll(t *testing.T) {
	Reset()

	Register("x", portSet{Name: "x", ID: 9})
	Reset()

	if _, ok := PortsAs[portSet]("x"); ok {
		t.Fatal("expected ok=false after reset")
	}
}

func TestMustPortsOf(t *testing.T) {
	t.Parallel()

	want := portSet{Name: "draft", ID: 3}
	got := MustPortsOf[portSet](fakeModule{name: "draft", ports: want})
	if got != want {
		t.Fatalf("unexpected ports got=%v want=%v", got, want)
	}
}

func TestMustPortsOfMismatchPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on ports type mismatch")
		}
	}()
	MustPortsOf[int](fakeModule{name: "draft", ports: portSet{}})
}

func TestRegistryConcurrentAccess(t *testing.T) {
	Reset()

	const n = 100
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			Register("concurrent", portSet{Name: "k", ID: i})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			_, _ = PortsAs[portSet]("concurrent")
		}
	}()
	wg.Wait()

	got, ok := PortsAs[portSet]("concurrent")
	if !ok || got.Name != "k" {
		t.Fatalf("unexpected final value got=%v ok=%v", got, ok)
	}
}
