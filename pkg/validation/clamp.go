package validation

// ClampInt restricts val to the inclusive range [min, max].
func ClampInt(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampIntDefault restricts val to [min, max] but substitutes def when val is
// zero or negative, for optional parameters that were never set.
func ClampIntDefault(val, min, max, def int) int {
	if val <= 0 {
		val = def
	}
	return ClampInt(val, min, max)
}
