package username

import "strings"

// DefaultLocale is used when a requested locale has no dictionary.
const DefaultLocale = "en"

// Provider supplies one candidate name fragment per call. Implementations
// fall back silently: to their default locale when the requested one is
// unsupported, and to an ungendered pool when no gendered variant exists.
type Provider interface {
	Fragment(kind Kind, gender Gender, locale string) string
}

// Dictionary is the built-in in-memory Provider. Locale lookup tries the
// exact tag, then its primary subtag, then DefaultLocale.
type Dictionary struct{}

func (Dictionary) Fragment(kind Kind, gender Gender, locale string) string {
	frags := poolFor(locale).fragments(kind, gender)
	if len(frags) == 0 {
		frags = locales[DefaultLocale].fragments(kind, gender)
	}
	return pick(frags)
}

func poolFor(locale string) *pool {
	tag := strings.ToLower(locale)
	if p, ok := locales[tag]; ok {
		return p
	}
	if base, _, found := strings.Cut(tag, "-"); found {
		if p, ok := locales[base]; ok {
			return p
		}
	}
	return locales[DefaultLocale]
}

// pool holds the name fragments of one locale. GenderAny slices are the
// union of every variant.
type pool struct {
	prefix map[Gender][]string
	first  map[Gender][]string
	last   []string
	suffix []string
}

func (p *pool) fragments(kind Kind, g Gender) []string {
	switch kind {
	case KindPrefix:
		return gendered(p.prefix, g)
	case KindFirstName:
		return gendered(p.first, g)
	case KindLastName:
		return p.last
	case KindSuffix:
		return p.suffix
	}
	return nil
}

// gendered falls back to the ungendered union when a variant is missing.
func gendered(m map[Gender][]string, g Gender) []string {
	if s := m[g]; len(s) != 0 {
		return s
	}
	return m[GenderAny]
}

// union concatenates pools for GenderAny lookups.
func union(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
