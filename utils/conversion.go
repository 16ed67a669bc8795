package utils

// IntToUintOrZero converts int to uint, returns 0 if negative.
// Use when negative values should be treated as zero/absent.
func IntToUintOrZero(val int) uint {
	if val < 0 {
		return 0
	}
	return uint(val)
}
