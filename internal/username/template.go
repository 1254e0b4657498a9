package username

import (
	"regexp"
	"strconv"
	"strings"
)

// Kind is the category of fragment a placeholder requests.
type Kind string

const (
	KindPrefix    Kind = "prefix"
	KindFirstName Kind = "first_name"
	KindLastName  Kind = "last_name"
	KindSuffix    Kind = "suffix"
	KindNumber    Kind = "number"
)

// Gender selects a gendered pool variant for name kinds.
type Gender int

const (
	GenderAny Gender = iota
	GenderFemale
	GenderMale
	GenderNonbinary
)

// genderCodes maps single-letter placeholder modifiers to pool variants.
// A modifier that is not a gender code is treated as a locale tag.
var genderCodes = map[string]Gender{
	"f": GenderFemale,
	"m": GenderMale,
	"n": GenderNonbinary,
}

// bounds for {number} placeholders without modifiers
const (
	defaultNumberLow  = 0
	defaultNumberHigh = 1000
)

// Placeholder is one parsed {part[:modifier[:modifier]]} occurrence.
// Raw is the exact template text, braces included.
type Placeholder struct {
	Raw    string
	Kind   Kind
	Gender Gender
	Locale string
	Low    int // inclusive range, number placeholders only
	High   int
}

// placeholderRE matches candidate placeholders: braces enclosing word
// characters, colons, and hyphens.
var placeholderRE = regexp.MustCompile(`\{([\w:-]+)\}`)

// Parse returns the recognized placeholders of template in order of
// appearance. Unknown part kinds and malformed number bounds are not
// errors: those placeholders are skipped and their text passes through
// rendering untouched.
func Parse(template string) []Placeholder {
	matches := placeholderRE.FindAllStringSubmatch(template, -1)
	phs := make([]Placeholder, 0, len(matches))
	for _, m := range matches {
		ph, ok := parseOne(m[0], m[1])
		if !ok {
			continue
		}
		phs = append(phs, ph)
	}
	return phs
}

func parseOne(raw, body string) (Placeholder, bool) {
	tokens := strings.Split(body, ":")
	ph := Placeholder{Raw: raw, Kind: Kind(tokens[0])}

	switch ph.Kind {
	case KindNumber:
		return parseBounds(ph, tokens[1:])
	case KindPrefix, KindFirstName, KindLastName, KindSuffix:
	default:
		return Placeholder{}, false
	}

	// two-stage modifier parse: gender code first, locale tag second;
	// a first modifier that is not a gender code is the locale
	mods := tokens[1:]
	if len(mods) > 0 {
		if g, ok := genderCodes[mods[0]]; ok {
			ph.Gender = g
			mods = mods[1:]
		}
	}
	if len(mods) > 0 {
		ph.Locale = mods[0]
	}
	return ph, true
}

// parseBounds resolves the numeric range: no modifiers means [0, 1000],
// one means [0, bound], two means [lower, upper]. Non-numeric tokens,
// extra tokens, and inverted ranges are malformed and the placeholder
// passes through.
func parseBounds(ph Placeholder, bounds []string) (Placeholder, bool) {
	ph.Low, ph.High = defaultNumberLow, defaultNumberHigh

	switch len(bounds) {
	case 0:
	case 1:
		n, err := strconv.Atoi(bounds[0])
		if err != nil {
			return Placeholder{}, false
		}
		ph.Low, ph.High = 0, n
	case 2:
		lo, errLo := strconv.Atoi(bounds[0])
		hi, errHi := strconv.Atoi(bounds[1])
		if errLo != nil || errHi != nil {
			return Placeholder{}, false
		}
		ph.Low, ph.High = lo, hi
	default:
		return Placeholder{}, false
	}

	if ph.Low > ph.High {
		return Placeholder{}, false
	}
	return ph, true
}
