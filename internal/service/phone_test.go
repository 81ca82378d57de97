package service

import "testing"

func TestPhoneFormatter_Display(t *testing.T) {
	formatter := NewPhoneFormatter("us")

	tests := map[string]struct {
		raw    string
		locked bool
		want   string
	}{
		"empty":                  {raw: "   ", locked: false, want: ""},
		"valid us to e164":       {raw: "(415) 555-2671", locked: false, want: "+14155552671"},
		"already e164":           {raw: "+14155552671", locked: false, want: "+14155552671"},
		"invalid passes through": {raw: "555-1212", locked: false, want: "555-1212"},
		"garbage passes through": {raw: "ext. 42", locked: false, want: "ext. 42"},
		"locked masks digits":    {raw: "415-555-2671", locked: true, want: "***-***-**71"},
		"locked short number":    {raw: "42", locked: true, want: "42"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := formatter.Display(tc.raw, tc.locked); got != tc.want {
				t.Fatalf("Display(%q, %v) = %q, want %q", tc.raw, tc.locked, got, tc.want)
			}
		})
	}
}

func TestNewPhoneFormatter_DefaultsRegion(t *testing.T) {
	formatter := NewPhoneFormatter("  ")
	if formatter.DefaultRegion != "US" {
		t.Fatalf("expected default region US, got %q", formatter.DefaultRegion)
	}
}
