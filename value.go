package vedit

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Strategy adapts a value type to text and arithmetic for an Editor.
// Editors are composed from a Strategy instead of specialised per type.
//
// Clamp must be idempotent: Clamp(Clamp(v, lo, hi), lo, hi) == Clamp(v, lo, hi).
type Strategy[T any] interface {
	// Parse converts text to a value. It reports false when the text does
	// not parse; it never panics.
	Parse(text string) (T, bool)
	// Format converts a value to its display text.
	Format(v T) string
	// Clamp restricts v to [lo, hi].
	Clamp(v, lo, hi T) T
	// Increment moves v by steps units. Integral types truncate steps.
	Increment(v T, steps float64) T
	// Equal reports whether two values are the same edit state.
	Equal(a, b T) bool
}

// Default step sizes for wheel edits.
const (
	CoarseStep = 10
	FineStep   = 1
)

// Number is the set of value types NumberStrategy handles.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// NumberStrategy parses and formats integers and floats using a Locale.
type NumberStrategy[N Number] struct {
	loc      *Locale
	integral bool
	bits     int
	lo, hi   N // representable range of integral N
}

// NewNumberStrategy returns a strategy for N. A nil locale means Invariant.
func NewNumberStrategy[N Number](loc *Locale) NumberStrategy[N] {
	if loc == nil {
		loc = Invariant
	}
	tenth := 0.1
	s := NumberStrategy[N]{loc: loc, bits: 64}
	switch {
	case N(tenth) == 0:
		s.integral = true
	case float64(N(tenth)) != tenth:
		s.bits = 32
	}
	if s.integral {
		hi := N(1)
		for hi*2 > hi {
			hi *= 2
		}
		s.hi = hi + (hi - 1)
		s.lo = -s.hi - 1
	}
	return s
}

// Parse tries the locale form first, then the invariant form.
func (s NumberStrategy[N]) Parse(text string) (N, bool) {
	if inv, ok := s.loc.delocalize(text); ok {
		if v, ok := s.parseInvariant(inv); ok {
			return v, true
		}
	}
	return s.parseInvariant(strings.TrimSpace(text))
}

func (s NumberStrategy[N]) parseInvariant(text string) (N, bool) {
	if text == "" {
		return 0, false
	}
	if s.integral {
		i, err := strconv.ParseInt(strings.TrimPrefix(text, "+"), 10, 64)
		if err != nil {
			return 0, false
		}
		v := N(i)
		if int64(v) != i {
			return 0, false
		}
		return v, true
	}
	f, err := strconv.ParseFloat(text, s.bits)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return N(f), true
}

// Format renders v in the locale form, without digit grouping.
func (s NumberStrategy[N]) Format(v N) string {
	if s.integral {
		return strconv.FormatInt(int64(v), 10)
	}
	return s.loc.localize(strconv.FormatFloat(float64(v), 'f', -1, s.bits))
}

// Clamp restricts v to [lo, hi]. Swapped bounds are tolerated.
func (NumberStrategy[N]) Clamp(v, lo, hi N) N {
	if lo > hi {
		lo, hi = hi, lo
	}
	return min(max(v, lo), hi)
}

// Increment adds steps to v. Integral types truncate steps toward zero
// and saturate at the bounds of N instead of wrapping.
func (s NumberStrategy[N]) Increment(v N, steps float64) N {
	if s.integral {
		return s.addSaturating(v, math.Trunc(steps))
	}
	return v + N(steps)
}

func (s NumberStrategy[N]) addSaturating(v N, t float64) N {
	if math.IsNaN(t) {
		return v
	}
	cur, lo, hi := int64(v), int64(s.lo), int64(s.hi)
	if math.Abs(t) < 1<<53 {
		d := int64(t)
		sum := cur + d
		switch {
		case d > 0 && (sum < cur || sum > hi):
			return s.hi
		case d < 0 && (sum > cur || sum < lo):
			return s.lo
		}
		return N(sum)
	}
	f := float64(cur) + t
	switch {
	case f >= float64(hi):
		return s.hi
	case f <= float64(lo):
		return s.lo
	}
	return N(int64(f))
}

// Equal reports a == b.
func (NumberStrategy[N]) Equal(a, b N) bool { return a == b }

// PercentageStrategy edits a fraction displayed as a percentage:
// 0.5 is shown as "50%". One increment step is one percent.
type PercentageStrategy struct {
	num NumberStrategy[float64]
}

// NewPercentageStrategy returns a percentage strategy using loc.
func NewPercentageStrategy(loc *Locale) PercentageStrategy {
	return PercentageStrategy{num: NewNumberStrategy[float64](loc)}
}

// Parse accepts "50%", "50 %" and "50".
func (p PercentageStrategy) Parse(text string) (float64, bool) {
	t := strings.TrimSpace(text)
	t = strings.TrimSpace(strings.TrimSuffix(t, "%"))
	v, ok := p.num.Parse(t)
	if !ok {
		return 0, false
	}
	return v / 100, true
}

// Format renders v*100 followed by '%'.
func (p PercentageStrategy) Format(v float64) string {
	pct := math.Round(v*100*1e9) / 1e9
	return p.num.Format(pct) + "%"
}

// Clamp restricts v to [lo, hi].
func (p PercentageStrategy) Clamp(v, lo, hi float64) float64 { return p.num.Clamp(v, lo, hi) }

// Increment moves v by steps percent.
func (PercentageStrategy) Increment(v, steps float64) float64 { return v + steps/100 }

// Equal reports a == b.
func (PercentageStrategy) Equal(a, b float64) bool { return a == b }

// Rational is an exact fraction such as a 30000/1001 frame rate.
// Den is always positive for values produced by RationalStrategy.
type Rational struct {
	Num, Den int64
}

// Float returns the fraction as a float64.
func (r Rational) Float() float64 {
	if r.Den == 0 {
		return math.NaN()
	}
	return float64(r.Num) / float64(r.Den)
}

func (r Rational) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

// normalized returns r with a positive denominator. A zero denominator,
// as in the zero value, becomes Num/1.
func (r Rational) normalized() Rational {
	switch {
	case r.Den == 0:
		r.Den = 1
	case r.Den < 0:
		r.Num, r.Den = -r.Num, -r.Den
	}
	return r
}

// cmp compares by value. The cross products are exact, so large terms
// such as 1<<40 / 3 do not overflow.
func (r Rational) cmp(o Rational) int {
	r, o = r.normalized(), o.normalized()
	a := new(big.Int).Mul(big.NewInt(r.Num), big.NewInt(o.Den))
	b := new(big.Int).Mul(big.NewInt(o.Num), big.NewInt(r.Den))
	return a.Cmp(b)
}

func (r Rational) less(o Rational) bool { return r.cmp(o) < 0 }

// RationalStrategy edits Rational values written as "num/den" or "num".
type RationalStrategy struct{}

// Parse accepts "num/den" with den != 0, or a bare integer.
func (RationalStrategy) Parse(text string) (Rational, bool) {
	numText, denText, hasDen := strings.Cut(strings.TrimSpace(text), "/")
	num, err := strconv.ParseInt(strings.TrimSpace(numText), 10, 64)
	if err != nil {
		return Rational{}, false
	}
	den := int64(1)
	if hasDen {
		den, err = strconv.ParseInt(strings.TrimSpace(denText), 10, 64)
		if err != nil || den == 0 {
			return Rational{}, false
		}
	}
	if den < 0 {
		num, den = -num, -den
	}
	return Rational{Num: num, Den: den}, true
}

// Format renders "num/den".
func (RationalStrategy) Format(v Rational) string { return v.String() }

// Clamp restricts v to [lo, hi] by value.
func (RationalStrategy) Clamp(v, lo, hi Rational) Rational {
	if hi.less(lo) {
		lo, hi = hi, lo
	}
	if v.less(lo) {
		return lo
	}
	if hi.less(v) {
		return hi
	}
	return v
}

// Increment moves v by whole units, keeping the denominator.
func (RationalStrategy) Increment(v Rational, steps float64) Rational {
	v = v.normalized()
	v.Num += int64(math.Trunc(steps)) * v.Den
	return v
}

// Equal compares by value, so 2/2 equals 1/1.
func (RationalStrategy) Equal(a, b Rational) bool { return a.cmp(b) == 0 }
