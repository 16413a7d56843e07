package update

func clampCursor(cursor, n int) int {
	if n <= 0 || cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}

func statusLine(s StatusBar) string {
	if s.Text == "" {
		return ""
	}
	if s.IsError {
		return "status: error: " + s.Text
	}
	return "status: " + s.Text
}
