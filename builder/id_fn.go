package builder

import (
	"strconv"
)

// IDFn maps a vertex index to its payload.
type IDFn func(idx int) string

// DefaultIDFn yields "0", "1", "2", ...
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// PrefixIDFn yields prefix followed by the decimal index, e.g. "v0".
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}
