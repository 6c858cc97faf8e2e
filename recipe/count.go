package recipe

import (
	"fmt"
	"math"

	"github.com/spf13/cast"
	"go.dw1.io/safemath"
)

// count converts a decoded quantifier count to a non-negative int.
//
// Integer values go through safemath so a count that does not fit in an int
// is rejected instead of wrapping. JSON numbers arrive as float64 and must be
// whole. Anything else, numeric strings in particular, is coerced by cast.
func count(v any) (int, error) {
	var (
		n   int
		err error
	)

	switch t := v.(type) {
	case bool:
		return 0, fmt.Errorf("count must be a number, got %v", t)
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		n, err = safemath.ConvertAny[int](v)
	case float32, float64:
		f := cast.ToFloat64(t)
		if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
			return 0, fmt.Errorf("count must be a whole number, got %v", t)
		}

		n, err = cast.ToE[int](v)
	default:
		n, err = cast.ToE[int](v)
	}

	if err != nil {
		return 0, fmt.Errorf("invalid count %v: %w", v, err)
	}

	if n < 0 {
		return 0, fmt.Errorf("count must not be negative, got %d", n)
	}

	return n, nil
}
