package math

import (
	"strconv"
)

// Format formats a float based on the given precision
func Format(f float64, precision int) string {
	return strconv.FormatFloat(f, 'f', precision, 64)
}
