package finding

import (
	"strings"
	"testing"
)

func TestForLocale_UnknownFallsBackToEnglish(t *testing.T) {
	catalog := ForLocale("xx")
	if got := catalog.Get(KeyName); got != "Loosely Scoped Cookie" {
		t.Fatalf("expected English fallback, got %q", got)
	}
}

func TestCatalog_PartialLocaleFallsBackPerKey(t *testing.T) {
	catalog := ForLocale("vi")

	if got := catalog.Get(KeyName); got != "Cookie có phạm vi lỏng lẻo" {
		t.Errorf("expected translated name, got %q", got)
	}

	// The vi catalog does not translate the description.
	if got := catalog.Get(KeyDescription); !strings.Contains(got, "domain scope") {
		t.Errorf("expected English description fallback, got %q", got)
	}
}

func TestCatalog_UnknownKeyReturnsKey(t *testing.T) {
	catalog := ForLocale("en")
	if got := catalog.Get("cookielooselyscoped.nope"); got != "cookielooselyscoped.nope" {
		t.Fatalf("expected key echo for unknown key, got %q", got)
	}
}

func TestCatalog_Getf(t *testing.T) {
	catalog := ForLocale("en")
	got := catalog.Getf(KeyExtraInfoCookie, "session=1; Domain=example.com")
	if got != "session=1; Domain=example.com\n" {
		t.Fatalf("unexpected formatted message: %q", got)
	}
}

func TestLocales(t *testing.T) {
	locales := Locales()
	found := false
	for _, l := range locales {
		if l == DefaultLocale {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected default locale in %v", locales)
	}
}
