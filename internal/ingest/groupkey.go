package ingest

import (
	"strings"

	"golang.org/x/net/idna"
)

// GroupKey normalizes the value used to collapse repeated company rows within
// a single parse: the company domain when present, otherwise its name. The
// scheme, a leading www. and a single trailing slash are stripped so that
// "https://Acme.com/", "www.acme.com" and "acme.com" group together.
func GroupKey(domain, name string) string {
	source := strings.TrimSpace(domain)
	if source == "" {
		source = strings.TrimSpace(name)
	}

	key := strings.ToLower(source)
	key = strings.TrimPrefix(key, "https://")
	key = strings.TrimPrefix(key, "http://")
	key = strings.TrimPrefix(key, "www.")
	key = strings.TrimSuffix(key, "/")
	key = strings.TrimSpace(key)

	// Internationalised domains fold to their punycode form so that the same
	// host always lands in the same group regardless of input encoding.
	if key != "" && !strings.ContainsAny(key, " \t") {
		if ascii, err := idna.Lookup.ToASCII(key); err == nil && ascii != "" {
			return ascii
		}
	}
	return key
}
