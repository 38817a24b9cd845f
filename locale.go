package vedit

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/vedit/internal/cache"
)

// Locale describes the numeric convention used to display and parse
// component text. Editors display numbers in the locale form and accept
// the invariant form ("1234.5") as a fallback when the locale form does
// not parse.
type Locale struct {
	Tag     language.Tag
	Decimal string // decimal separator, e.g. "." or ","
	Group   string // digit group separator, empty when the locale has none
}

// Invariant is the culture-neutral convention: '.' decimal, no grouping.
var Invariant = &Locale{Tag: language.Und, Decimal: "."}

// locales holds derived conventions keyed by BCP 47 tag.
var locales = cache.New[string, *Locale](32)

// LocaleFor returns the convention for tag, deriving it on first use.
// Editors for the same UI language share the returned *Locale.
func LocaleFor(tag language.Tag) *Locale {
	return locales.GetOrCreate(tag.String(), func() *Locale { return NewLocale(tag) })
}

// NewLocale derives the separators for tag by formatting sample numbers
// with a golang.org/x/text message printer.
func NewLocale(tag language.Tag) *Locale {
	p := message.NewPrinter(tag)
	loc := &Locale{
		Tag:     tag,
		Decimal: firstNonDigit(p.Sprintf("%.1f", 0.5)),
		Group:   firstNonDigit(p.Sprintf("%d", 1234567)),
	}
	if loc.Decimal == "" {
		loc.Decimal = "."
	}
	if loc.Group == loc.Decimal {
		loc.Group = ""
	}
	return loc
}

// firstNonDigit returns the first rune of s that is not a digit or sign.
func firstNonDigit(s string) string {
	for _, r := range s {
		if unicode.IsDigit(r) || r == '-' || r == '+' {
			continue
		}
		return string(r)
	}
	return ""
}

// localize rewrites an invariant number ("-1234.5") into the locale form.
// Grouping is never emitted so the text round-trips through Parse.
func (l *Locale) localize(invariant string) string {
	if l == nil || l.Decimal == "." {
		return invariant
	}
	return strings.Replace(invariant, ".", l.Decimal, 1)
}

// delocalize converts locale text into invariant form. It reports false
// when the text is not a well-formed locale number: more than one decimal
// separator, or a group separator outside a three-digit position. That
// rule is what resolves "1.5" under a '.'-grouping locale to the
// invariant 1.5 instead of 15.
func (l *Locale) delocalize(text string) (string, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return "", false
	}
	if l == nil {
		l = Invariant
	}

	sign := ""
	if s[0] == '-' || s[0] == '+' {
		sign, s = s[:1], s[1:]
	}

	intPart, frac, hasFrac := strings.Cut(s, l.Decimal)
	if hasFrac && strings.Contains(frac, l.Decimal) {
		return "", false
	}

	if l.Group != "" {
		groups := splitGroups(intPart, l.Group)
		if len(groups) > 1 {
			if n := utf8.RuneCountInString(groups[0]); n < 1 || n > 3 {
				return "", false
			}
			for _, g := range groups[1:] {
				if utf8.RuneCountInString(g) != 3 {
					return "", false
				}
			}
			intPart = strings.Join(groups, "")
		}
		if l.isGroupRune(frac) {
			return "", false
		}
	}

	out := sign + intPart
	if hasFrac {
		out += "." + frac
	}
	return out, true
}

// splitGroups splits s on the group separator. A space-like separator
// (French uses U+202F) also matches a plain space.
func splitGroups(s, group string) []string {
	r, _ := utf8.DecodeRuneInString(group)
	if unicode.IsSpace(r) {
		return strings.FieldsFunc(s, func(c rune) bool {
			return c == r || c == ' ' || c == '\u00a0' || c == '\u202f'
		})
	}
	return strings.Split(s, group)
}

func (l *Locale) isGroupRune(s string) bool {
	return l.Group != "" && strings.Contains(s, l.Group)
}
