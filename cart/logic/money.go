package logic

import "fmt"

const basisPointsPerUnit = 10000

// ApplyRate returns amountCents * bps / 10000 rounded half away from zero.
func ApplyRate(amountCents, bps int64) int64 {
	product := amountCents * bps
	if product < 0 {
		return -((-product + basisPointsPerUnit/2) / basisPointsPerUnit)
	}
	return (product + basisPointsPerUnit/2) / basisPointsPerUnit
}

// FormatCents renders cents as a dollar string, e.g. 32292 -> "$322.92".
func FormatCents(cents int64) string {
	sign := ""
	u := uint64(cents)
	if cents < 0 {
		sign = "-"
		u = uint64(-(cents + 1)) + 1
	}
	return fmt.Sprintf("%s$%d.%02d", sign, u/100, u%100)
}
