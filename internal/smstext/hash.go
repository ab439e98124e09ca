package smstext

import (
	"strconv"
	"strings"
)

// ComputeHash returns a short fingerprint of the normalized body for
// duplicate suppression. It is not a cryptographic digest.
func ComputeHash(body string) string {
	normalized := strings.ToLower(strings.TrimSpace(body))

	var h int32
	for _, r := range normalized {
		h = 31*h + int32(r)
	}

	// Widen before negating so math.MinInt32 stays positive.
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return strconv.FormatInt(v, 36)
}
