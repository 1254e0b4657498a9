// Package username generates email local parts from a small placeholder
// template grammar, plus pronounceable fallback handles.
// All generation uses crypto/rand — no math/rand, no side effects.
package username

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// maxAttempts bounds the retry-until-unique loop for a single
// placeholder. Exceeding it means the template asks for more distinct
// fragments than the pool or range can supply.
const maxAttempts = 100

// ErrUniquenessExhausted is returned when a placeholder cannot produce
// a fragment that differs from the ones already generated for its kind.
var ErrUniquenessExhausted = errors.New("uniqueness retries exhausted")

// ValidationError reports a rendered username that does not satisfy the
// email local-part grammar. Profile names the config profile whose
// template produced it.
type ValidationError struct {
	Username string
	Template string
	Profile  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("username %q rendered from template %q is not a valid email local part; check the template configured for %s",
		e.Username, e.Template, e.Profile)
}

// nonWord strips punctuation and whitespace from provider fragments.
// Letters and digits of any script survive; the normalizer handles
// transliteration afterwards.
var nonWord = regexp.MustCompile(`[^\p{L}\p{N}_]+`)

// Generator renders username templates.
type Generator struct {
	provider Provider
}

// New returns a generator backed by the built-in name dictionary.
func New() *Generator {
	return &Generator{provider: Dictionary{}}
}

// NewWithProvider returns a generator drawing name fragments from p.
func NewWithProvider(p Provider) *Generator {
	return &Generator{provider: p}
}

// Render generates a username from template: each recognized placeholder
// is replaced with a fresh fragment, then the whole string is normalized
// to lowercase ASCII and validated as an email local part. Fragments of
// the same part kind never repeat within one call. profile names the
// config profile the template came from and is echoed in validation
// errors.
func (g *Generator) Render(template, profile string) (string, error) {
	out := template
	seen := make(map[Kind][]string)

	for _, ph := range Parse(template) {
		frag, err := g.fragment(ph, seen[ph.Kind])
		if err != nil {
			return "", err
		}
		seen[ph.Kind] = append(seen[ph.Kind], frag)
		// repeated identical placeholders are filled left to right
		out = strings.Replace(out, ph.Raw, frag, 1)
	}

	out = Normalize(out)
	if !ValidLocalPart(out) {
		return "", &ValidationError{Username: out, Template: template, Profile: profile}
	}
	return out, nil
}

// fragment draws until the result is new for the placeholder's kind,
// bounded by maxAttempts.
func (g *Generator) fragment(ph Placeholder, seen []string) (string, error) {
	for range maxAttempts {
		var frag string
		if ph.Kind == KindNumber {
			frag = strconv.Itoa(ph.Low + randIntn(ph.High-ph.Low+1))
		} else {
			frag = nonWord.ReplaceAllString(g.provider.Fragment(ph.Kind, ph.Gender, ph.Locale), "")
		}
		if !slices.Contains(seen, frag) {
			return frag, nil
		}
	}
	return "", fmt.Errorf("placeholder %s: %w", ph.Raw, ErrUniquenessExhausted)
}

// pick returns a random element from a string slice.
func pick(s []string) string {
	return s[randIntn(len(s))]
}

// randIntn returns a cryptographically random int in [0, n).
func randIntn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand failure is unrecoverable
		panic("crypto/rand: " + err.Error())
	}
	return int(v.Int64())
}
