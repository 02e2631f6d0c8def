package game

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// Raw is a single note record as it comes out of a chart, before any
// coercion. Keys that are not recognised are ignored.
type Raw map[string]interface{}

// Number coerces the value stored at key into a float64, returning NaN when
// the key is absent or the value is not numeric.
// Null, an empty string and an empty list are 0, booleans are 0 or 1 and
// strings are read as decimal, 0x/0o/0b integer or Infinity literals.
func (r Raw) Number(key string) float64 {
	v, ok := r[key]
	if !ok {
		return math.NaN()
	}
	return toNumber(v)
}

// Truthy reports whether the value at key is set to something other than a
// zero value.
func (r Raw) Truthy(key string) bool {
	v, ok := r[key]
	if !ok || v == nil {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t != ""
	case []interface{}, map[string]interface{}:
		return true
	}
	f := toNumber(v)
	return f != 0 && !math.IsNaN(f)
}

// String returns the reference stored at key when it is truthy. Numbers
// and booleans are formatted, lists and maps are not references.
func (r Raw) String(key string) (string, bool) {
	if !r.Truthy(key) {
		return "", false
	}
	switch t := r[key].(type) {
	case string:
		return t, true
	case bool:
		return "true", true
	case []interface{}, map[string]interface{}:
		return "", false
	}
	f := toNumber(r[key])
	if f == math.Trunc(f) && math.Abs(f) < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64), true
	}
	return fmt.Sprint(f), true
}

func toNumber(v interface{}) float64 {
	switch t := v.(type) {
	case nil:
		return 0
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	case uint64:
		return float64(t)
	case bool:
		if t {
			return 1
		}
		return 0
	case string:
		return stringToNumber(t)
	case []interface{}:
		// A list reads as its single element, joined lists are never numbers.
		switch len(t) {
		case 0:
			return 0
		case 1:
			if _, ok := t[0].(bool); ok {
				return math.NaN()
			}
			return toNumber(t[0])
		}
		return math.NaN()
	case interface{ Float64() (float64, error) }:
		f, err := t.Float64()
		if nil != err {
			return math.NaN()
		}
		return f
	}
	return math.NaN()
}

var decimal = regexp.MustCompile(`^[+-]?([0-9]+\.?[0-9]*|\.[0-9]+)([eE][+-]?[0-9]+)?$`)

var prefixes = map[string]int{"0x": 16, "0X": 16, "0o": 8, "0O": 8, "0b": 2, "0B": 2}

func stringToNumber(str string) float64 {
	s := strings.TrimSpace(str)
	switch s {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if len(s) > 2 {
		if base, ok := prefixes[s[:2]]; ok {
			digits := s[2:]
			if digits[0] == '+' || digits[0] == '-' {
				return math.NaN()
			}
			n, ok := new(big.Int).SetString(digits, base)
			if !ok {
				return math.NaN()
			}
			f, _ := new(big.Float).SetInt(n).Float64()
			return f
		}
	}

	if !decimal.MatchString(s) {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if nil != err && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return f
}

// fround rounds to the nearest float32 and widens back, so that every later
// operation happens on single precision values.
func fround(x float64) float64 {
	return float64(float32(x))
}

// toFixed6 rounds x to 6 decimal digits. Exact ties round away from zero,
// matching the authoring tool.
func toFixed6(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	s := strconv.FormatFloat(x, 'f', 6, 64)
	shortest := strconv.FormatFloat(x, 'f', -1, 64)
	if isTie(x, shortest) {
		step := 1e-6
		if x < 0 {
			step = -step
		}
		s = strconv.FormatFloat(x+step/2, 'f', 6, 64)
	}
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

// isTie reports whether x is exactly halfway between two 6 digit decimals.
func isTie(x float64, shortest string) bool {
	i := strings.IndexByte(shortest, '.')
	if i < 0 || len(shortest)-i-1 != 7 || shortest[len(shortest)-1] != '5' {
		return false
	}
	d, ok := new(big.Rat).SetString(shortest)
	if !ok {
		return false
	}
	return new(big.Rat).SetFloat64(x).Cmp(d) == 0
}
