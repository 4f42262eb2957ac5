package util

// Clamp constrains a value to a range.
func Clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Wrap returns value modulo n, always in [0, n).
func Wrap(value, n int) int {
	if n <= 0 {
		return 0
	}
	value %= n
	if value < 0 {
		value += n
	}
	return value
}
