package report

// rankSize caps every ranked table on the dashboard.
const rankSize = 5

func headN[T any](s []T, n int) []T {
	if n > len(s) {
		n = len(s)
	}
	return s[:n]
}

func tailN[T any](s []T, n int) []T {
	if n > len(s) {
		n = len(s)
	}
	return s[len(s)-n:]
}
