// Package conv provides small generic conversion and bounds helpers.
package conv

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

func Clamp[T Number](v, low, high T) T {
	if high < low {
		low, high = high, low
	}

	return min(high, max(low, v))
}

// ParseInt parses s, falling back to def on any error.
func ParseInt(s string, def int) int {
	value, errValue := strconv.ParseInt(s, 10, 32)
	if errValue != nil {
		return def
	}

	return int(value)
}
