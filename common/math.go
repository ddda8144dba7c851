package common

import (
	"github.com/chewxy/math32"
)

// Clampf limits v to [lo, hi].
func Clampf(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(v, hi))
}
