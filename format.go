package urlparams

import (
	"fmt"
	"math"
	"strconv"
)

// Scalar rendering is pure and stateless: the same scalar always yields the
// same text, with no shared formatting state between encode calls.

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

func formatUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func formatBool(v bool) string {
	return strconv.FormatBool(v)
}

// formatFloat renders the shortest decimal string that round-trips to v.
// NaN and infinities have no query-string representation.
func formatFloat(v float64) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", fmt.Errorf("non-finite float %v", v)
	}
	return strconv.FormatFloat(v, 'f', -1, 64), nil
}
