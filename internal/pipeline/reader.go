package pipeline

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/livp123/urlp/internal/metrics"
)

// maxLineSize bounds a single input line. Anything longer than the parser
// accepts anyway is rejected downstream, so 1 MiB leaves plenty of slack.
const maxLineSize = 1 << 20

// ReadLines consumes r line by line, skipping blank lines and '#' comments.
func ReadLines(r io.Reader, countMetrics bool) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	for scanner.Scan() {
		if countMetrics {
			metrics.LinesReadTotal.Inc()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			if countMetrics {
				metrics.LinesSkippedTotal.Inc()
			}
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// ReadFile reads URLs from a file, or from stdin when path is "-".
func ReadFile(path string, countMetrics bool) ([]string, error) {
	if path == "-" {
		return ReadLines(os.Stdin, countMetrics)
	}
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLines(f, countMetrics)
}

// StdinIsPiped reports whether stdin is connected to a pipe or file rather
// than an interactive terminal.
func StdinIsPiped() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice == 0
}
