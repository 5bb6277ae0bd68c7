package config

import (
	"testing"
	"time"
)

func TestPrefixComposes(t *testing.T) {
	t.Setenv("APP_NOTION_TOKEN", "secret-1")

	c := New().Prefix("APP_").Prefix("NOTION_")
	if got := c.MustString("TOKEN"); got != "secret-1" {
		t.Fatalf("MustString = %q, want %q", got, "secret-1")
	}
}

func TestMustStringPanicsOnMissing(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for missing env")
		}
	}()
	New().MustString("CFGT_MISSING_KEY")
}

func TestMustURL(t *testing.T) {
	t.Setenv("CFGT_WEBHOOK_URL", "https://example.com/hook?x=1")

	u := New().MustURL("CFGT_WEBHOOK_URL")
	if u.Host != "example.com" || u.Path != "/hook" {
		t.Fatalf("unexpected URL parts: host=%q path=%q", u.Host, u.Path)
	}
}

func TestMustURLRejectsRelative(t *testing.T) {
	t.Setenv("CFGT_WEBHOOK_URL", "/just/a/path")

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for relative URL")
		}
	}()
	New().MustURL("CFGT_WEBHOOK_URL")
}

func TestMustPort(t *testing.T) {
	t.Setenv("CFGT_PORT", "4000")

	if got := New().MustPort("CFGT_PORT"); got != ":4000" {
		t.Fatalf("MustPort = %q, want %q", got, ":4000")
	}
}

func TestMustPortAllowsEphemeral(t *testing.T) {
	t.Setenv("CFGT_PORT", "0")

	if got := New().MustPort("CFGT_PORT"); got != ":0" {
		t.Fatalf("MustPort = %q, want %q", got, ":0")
	}
}

func TestMustPortRejectsOutOfRange(t *testing.T) {
	t.Setenv("CFGT_PORT", "70000")

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range port")
		}
	}()
	New().MustPort("CFGT_PORT")
}

func TestMayDuration(t *testing.T) {
	t.Setenv("CFGT_TIMEOUT", "250ms")

	if got := New().MayDuration("CFGT_TIMEOUT", time.Second); got != 250*time.Millisecond {
		t.Fatalf("MayDuration = %v, want 250ms", got)
	}
}

func TestMayDurationDefaults(t *testing.T) {
	t.Setenv("CFGT_TIMEOUT", "")

	if got := New().MayDuration("CFGT_TIMEOUT", 15*time.Second); got != 15*time.Second {
		t.Fatalf("MayDuration = %v, want 15s", got)
	}
}

func TestMayDurationInvalidFallsBack(t *testing.T) {
	t.Setenv("CFGT_TIMEOUT", "soon")

	if got := New().MayDuration("CFGT_TIMEOUT", 2*time.Second); got != 2*time.Second {
		t.Fatalf("MayDuration = %v, want 2s", got)
	}
}
