package config

import (
	"fmt"
	"math/bits"
	"regexp"
	"strconv"
	"strings"
)

var indexPattern = regexp.MustCompile(`^([0-9][0-9_]*)([KMGTPE]?)$`)

var indexMultipliers = map[string]uint64{
	"":  1,
	"K": 1_000,
	"M": 1_000_000,
	"G": 1_000_000_000,
	"T": 1_000_000_000_000,
	"P": 1_000_000_000_000_000,
	"E": 1_000_000_000_000_000_000,
}

// ParseIndex parses an index literal. Underscores may separate digit groups
// and an optional decimal suffix scales the value: K (1e3), M (1e6),
// G (1e9), T (1e12), P (1e15) or E (1e18). "5G" is 5_000_000_000.
func ParseIndex(s string) (uint64, error) {
	pieces := indexPattern.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(s)))
	if pieces == nil {
		return 0, fmt.Errorf("invalid index literal %q", s)
	}
	value, err := strconv.ParseUint(strings.ReplaceAll(pieces[1], "_", ""), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid index literal %q: %w", s, err)
	}
	hi, lo := bits.Mul64(value, indexMultipliers[pieces[2]])
	if hi != 0 {
		return 0, fmt.Errorf("index literal %q overflows 64 bits", s)
	}
	return lo, nil
}

// FormatIndex renders n with the largest suffix that divides it exactly,
// so that ParseIndex(FormatIndex(n)) == n.
func FormatIndex(n uint64) string {
	for _, suffix := range []string{"E", "P", "T", "G", "M", "K"} {
		m := indexMultipliers[suffix]
		if n >= m && n%m == 0 {
			return strconv.FormatUint(n/m, 10) + suffix
		}
	}
	return strconv.FormatUint(n, 10)
}

// indexValue adapts a uint64 to flag.Value using ParseIndex.
type indexValue uint64

func (v *indexValue) String() string {
	if v == nil {
		return "0"
	}
	return FormatIndex(uint64(*v))
}

func (v *indexValue) Set(s string) error {
	n, err := ParseIndex(s)
	if err != nil {
		return err
	}
	*v = indexValue(n)
	return nil
}
