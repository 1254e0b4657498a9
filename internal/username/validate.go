package username

import "regexp"

// localPart is the email local-part grammar (RFC 5322, simplified): a
// dot-separated sequence of atoms, or a quoted string with escapes.
// See https://emailregex.com/. The grammar is lowercase-only; callers
// normalize first.
var localPart = regexp.MustCompile("^(?:" +
	"[a-z0-9!#$%&'*+/=?^_`{|}~-]+(?:\\.[a-z0-9!#$%&'*+/=^_`{|}~-]+)*" +
	"|\"(?:[\\x01-\\x08\\x0b\\x0c\\x0e-\\x1f\\x21\\x23-\\x5b\\x5d-\\x7f]|\\\\[\\x01-\\x09\\x0b\\x0c\\x0e-\\x7f])*\"" +
	")$")

// ValidLocalPart reports whether s is a syntactically legal email
// local part.
func ValidLocalPart(s string) bool {
	return localPart.MatchString(s)
}
