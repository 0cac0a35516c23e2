// Package resultvalue defines the typed performance value of a result and
// the per-type rules for parsing, comparing and formatting it.
//
// A workout declares one result type; every value submitted for it must
// normalize to that type. All parsing lives here so that duration handling
// ("mm:ss" / "hh:mm:ss" to seconds and back) has a single owner.
package resultvalue

import (
	"fmt"
	"strconv"
	"strings"
)

// Type enumerates the supported result types.
type Type string

// Result types.
const (
	TypeReps   Type = "REPS"
	TypeWeight Type = "WEIGHT"
	TypeTime   Type = "TIME"
)

// Valid reports whether t is a known result type.
func (t Type) Valid() bool {
	switch t {
	case TypeReps, TypeWeight, TypeTime:
		return true
	}
	return false
}

// Value is a tagged variant holding exactly one of the three performance
// representations. The zero Value means "no performance recorded" and sorts
// after every concrete value.
type Value struct {
	typ     Type
	reps    int
	weight  float64
	seconds int
}

// Reps builds a repetition-count value.
func Reps(n int) Value { return Value{typ: TypeReps, reps: n} }

// Weight builds a lifted-weight value.
func Weight(w float64) Value { return Value{typ: TypeWeight, weight: w} }

// Seconds builds an elapsed-time value.
func Seconds(s int) Value { return Value{typ: TypeTime, seconds: s} }

// Type returns the variant tag, or "" for the zero Value.
func (v Value) Type() Type { return v.typ }

// IsZero reports whether the value carries no recorded performance.
func (v Value) IsZero() bool { return v.typ == "" }

// Reps returns the repetition count; zero unless the value is TypeReps.
func (v Value) Reps() int { return v.reps }

// Weight returns the lifted weight; zero unless the value is TypeWeight.
func (v Value) Weight() float64 { return v.weight }

// Seconds returns the elapsed seconds; zero unless the value is TypeTime.
func (v Value) Seconds() int { return v.seconds }

// strategy bundles the per-type behavior so call sites never switch on the
// type themselves.
type strategy struct {
	parse  func(raw string) (Value, error)
	better func(a, b Value) bool // true when a outperforms b
	format func(v Value) string
}

var strategies = map[Type]strategy{
	TypeReps: {
		parse:  parseReps,
		better: func(a, b Value) bool { return a.reps > b.reps },
		format: func(v Value) string { return strconv.Itoa(v.reps) },
	},
	TypeWeight: {
		parse:  parseWeight,
		better: func(a, b Value) bool { return a.weight > b.weight },
		format: func(v Value) string { return strconv.FormatFloat(v.weight, 'f', -1, 64) },
	},
	TypeTime: {
		parse:  parseDuration,
		better: func(a, b Value) bool { return a.seconds < b.seconds },
		format: func(v Value) string { return FormatDuration(v.seconds) },
	},
}

// Parse normalizes a raw submission into the typed value required by t.
// It returns ErrTypeMismatch when the raw shape does not fit t, or
// ErrInvalidTimeFormat for malformed durations on TIME workouts.
func Parse(t Type, raw string) (Value, error) {
	s, ok := strategies[t]
	if !ok {
		return Value{}, fmt.Errorf("parse %q: %w", t, ErrUnknownType)
	}
	return s.parse(strings.TrimSpace(raw))
}

// Better reports whether a outperforms b under t's ranking direction:
// higher first for REPS and WEIGHT, lower first for TIME. A zero value never
// outperforms a concrete one.
func Better(t Type, a, b Value) bool {
	switch {
	case a.IsZero():
		return false
	case b.IsZero():
		return true
	}
	s, ok := strategies[t]
	if !ok {
		return false
	}
	return s.better(a, b)
}

// Format renders a value for display. The TIME rendering is the inverse of
// Parse for valid durations. A zero Value renders as "-".
func Format(v Value) string {
	if v.IsZero() {
		return "-"
	}
	s, ok := strategies[v.typ]
	if !ok {
		return "-"
	}
	return s.format(v)
}

func parseReps(raw string) (Value, error) {
	if strings.Contains(raw, ":") {
		return Value{}, fmt.Errorf("reps value %q: %w", raw, ErrTypeMismatch)
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return Value{}, fmt.Errorf("reps value %q: %w", raw, ErrTypeMismatch)
	}
	return Reps(n), nil
}

func parseWeight(raw string) (Value, error) {
	if strings.Contains(raw, ":") {
		return Value{}, fmt.Errorf("weight value %q: %w", raw, ErrTypeMismatch)
	}
	w, err := strconv.ParseFloat(raw, 64)
	if err != nil || w <= 0 {
		return Value{}, fmt.Errorf("weight value %q: %w", raw, ErrTypeMismatch)
	}
	return Weight(w), nil
}

// parseDuration accepts "mm:ss" or "hh:mm:ss" with non-negative integer
// components and converts to total seconds.
func parseDuration(raw string) (Value, error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return Value{}, fmt.Errorf("time value %q: %w", raw, ErrInvalidTimeFormat)
	}
	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return Value{}, fmt.Errorf("time value %q: %w", raw, ErrInvalidTimeFormat)
		}
		nums[i] = n
	}
	var total int
	if len(nums) == 2 {
		total = nums[0]*60 + nums[1]
	} else {
		total = nums[0]*3600 + nums[1]*60 + nums[2]
	}
	return Seconds(total), nil
}

// FormatDuration renders seconds as "h:mm:ss" when the duration reaches an
// hour and "m:ss" otherwise.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
