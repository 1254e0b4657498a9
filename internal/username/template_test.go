package username

import (
	"testing"
)

func TestParseKindsInOrder(t *testing.T) {
	phs := Parse("{prefix} {first_name} {last_name} {suffix} {number}")

	want := []Kind{KindPrefix, KindFirstName, KindLastName, KindSuffix, KindNumber}
	if len(phs) != len(want) {
		t.Fatalf("placeholder count: got %d, want %d", len(phs), len(want))
	}
	for i, ph := range phs {
		if ph.Kind != want[i] {
			t.Errorf("placeholder[%d]: got kind %q, want %q", i, ph.Kind, want[i])
		}
	}
}

func TestParseModifiers(t *testing.T) {
	tests := []struct {
		template string
		gender   Gender
		locale   string
	}{
		{"{first_name}", GenderAny, ""},
		{"{first_name:f}", GenderFemale, ""},
		{"{first_name:m}", GenderMale, ""},
		{"{first_name:n}", GenderNonbinary, ""},
		{"{first_name:fr}", GenderAny, "fr"},
		{"{first_name:f:en-GB}", GenderFemale, "en-GB"},
		{"{first_name:m:de}", GenderMale, "de"},
		// the gender slot wins over a same-letter locale
		{"{last_name:f}", GenderFemale, ""},
		// extra tokens after the locale are ignored
		{"{first_name:f:en:x}", GenderFemale, "en"},
		// an unknown first modifier is a locale, not an error
		{"{first_name:xx}", GenderAny, "xx"},
		// gender codes are case-sensitive; F falls through to the locale slot
		{"{first_name:F}", GenderAny, "F"},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			phs := Parse(tt.template)
			if len(phs) != 1 {
				t.Fatalf("placeholder count: got %d, want 1", len(phs))
			}
			if phs[0].Gender != tt.gender {
				t.Errorf("gender: got %v, want %v", phs[0].Gender, tt.gender)
			}
			if phs[0].Locale != tt.locale {
				t.Errorf("locale: got %q, want %q", phs[0].Locale, tt.locale)
			}
		})
	}
}

func TestParseNumberBounds(t *testing.T) {
	tests := []struct {
		template  string
		low, high int
	}{
		{"{number}", 0, 1000},
		{"{number:50}", 0, 50},
		{"{number:0}", 0, 0},
		{"{number:5:9}", 5, 9},
		{"{number:1:1}", 1, 1},
		{"{number:-5:5}", -5, 5},
		{"{number:-10:-2}", -10, -2},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			phs := Parse(tt.template)
			if len(phs) != 1 {
				t.Fatalf("placeholder count: got %d, want 1", len(phs))
			}
			if phs[0].Low != tt.low || phs[0].High != tt.high {
				t.Errorf("bounds: got [%d, %d], want [%d, %d]", phs[0].Low, phs[0].High, tt.low, tt.high)
			}
		})
	}
}

func TestParseSkipsUnrecognized(t *testing.T) {
	tests := []string{
		"{frob}",            // unknown kind
		"{number:a}",        // non-numeric bound
		"{number:1:b}",      // non-numeric upper bound
		"{number:9:1}",      // inverted range
		"{number:-5}",       // single negative bound inverts [0, n]
		"{number:1:2:3}",    // too many bounds
		"{FIRST_NAME}",      // kinds are lowercase
		"no placeholders",   // nothing to parse
		"{first name}",      // space breaks the match
		"{}",                // empty braces
		"mid{brace",         // unbalanced
	}

	for _, tt := range tests {
		t.Run(tt, func(t *testing.T) {
			if phs := Parse(tt); len(phs) != 0 {
				t.Errorf("got %d placeholders, want 0: %+v", len(phs), phs)
			}
		})
	}
}

func TestParseRepeatedPlaceholders(t *testing.T) {
	phs := Parse("{first_name}.{first_name}")
	if len(phs) != 2 {
		t.Fatalf("placeholder count: got %d, want 2", len(phs))
	}
	for i, ph := range phs {
		if ph.Raw != "{first_name}" {
			t.Errorf("placeholder[%d].Raw: got %q, want %q", i, ph.Raw, "{first_name}")
		}
	}
}

func TestParseRawKeepsBraces(t *testing.T) {
	phs := Parse("x{number:1:5}y")
	if len(phs) != 1 {
		t.Fatalf("placeholder count: got %d, want 1", len(phs))
	}
	if phs[0].Raw != "{number:1:5}" {
		t.Errorf("raw: got %q, want %q", phs[0].Raw, "{number:1:5}")
	}
}

func TestParseSkipsUnknownAmongRecognized(t *testing.T) {
	phs := Parse("{frob}{first_name}{blurb:2}")
	if len(phs) != 1 {
		t.Fatalf("placeholder count: got %d, want 1", len(phs))
	}
	if phs[0].Kind != KindFirstName {
		t.Errorf("kind: got %q, want %q", phs[0].Kind, KindFirstName)
	}
}
