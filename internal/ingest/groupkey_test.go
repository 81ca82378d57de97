package ingest

import "testing"

func TestGroupKey_NormalizesDomainVariants(t *testing.T) {
	variants := []string{"https://Acme.com/", "http://acme.com", "www.acme.com", "acme.com", "  ACME.COM "}
	for _, variant := range variants {
		if got := GroupKey(variant, ""); got != "acme.com" {
			t.Fatalf("expected acme.com for %q, got %q", variant, got)
		}
	}
}

func TestGroupKey_FallsBackToName(t *testing.T) {
	if got := GroupKey("", "Acme Incorporated"); got != "acme incorporated" {
		t.Fatalf("unexpected name key: %q", got)
	}
	if got := GroupKey("", ""); got != "" {
		t.Fatalf("expected empty key for empty inputs, got %q", got)
	}
}

func TestGroupKey_PrefersDomainOverName(t *testing.T) {
	if got := GroupKey("acme.com", "Totally Different"); got != "acme.com" {
		t.Fatalf("expected domain to win, got %q", got)
	}
}

func TestGroupKey_FoldsUnicodeDomains(t *testing.T) {
	a := GroupKey("münchen.de", "")
	b := GroupKey("xn--mnchen-3ya.de", "")
	if a == "" || a != b {
		t.Fatalf("expected punycode folding, got %q vs %q", a, b)
	}
}
