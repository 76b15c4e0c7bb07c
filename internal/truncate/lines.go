package truncate

import (
	"bytes"
	"strings"
)

// SplitLines splits data into lines, each keeping its trailing newline
// byte, so joining the result reproduces data exactly. A final chunk
// without a newline counts as its own line. Only '\n' terminates a
// line; a lone carriage return is an ordinary byte.
func SplitLines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	lines := make([]string, 0, bytes.Count(data, []byte("\n"))+1)
	for len(data) > 0 {
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			lines = append(lines, string(data))
			break
		}
		lines = append(lines, string(data[:i+1]))
		data = data[i+1:]
	}
	return lines
}

// CountLines reports how many lines SplitLines would return without
// materializing them.
func CountLines(data []byte) int {
	if len(data) == 0 {
		return 0
	}
	n := bytes.Count(data, []byte("\n"))
	if data[len(data)-1] != '\n' {
		n++
	}
	return n
}

// HasClosing reports whether data already ends with the closing
// snippet.
func HasClosing(data []byte, closing string) bool {
	if closing == "" {
		return false
	}
	return bytes.HasSuffix(data, []byte(closing))
}

// TailLines returns the last n lines of data with their terminators
// stripped, for preview display.
func TailLines(data []byte, n int) []string {
	if n <= 0 {
		return nil
	}
	lines := SplitLines(data)
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = strings.TrimRight(line, "\r\n")
	}
	return out
}
