package utils

// BoolToInt maps a flag onto SQLite's 0/1 integer booleans.
func BoolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
