package legend

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// statusSuffix is stripped from legend keys to derive the status name,
// e.g. AVAILABLE_COLOR -> available.
const statusSuffix = "_COLOR"

// Legend maps a raw colour token (as it appears in HTML, e.g. "#00FF00")
// to a canonical booking status name (e.g. "available").
type Legend map[string]string

// ConfigError reports a malformed legend line. The legend is a fixed
// deployment resource, so a malformed line aborts the run.
type ConfigError struct {
	Line int
	Text string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("legend line %d: expected exactly one '=' separator, got %q", e.Line, e.Text)
}

// Load parses a legend resource. Each non-comment, non-blank line must
// contain exactly one '=' separating the status key from the colour token.
func Load(r io.Reader) (Legend, error) {
	lgd := make(Legend)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.Count(line, "=") != 1 {
			return nil, &ConfigError{Line: lineNo, Text: line}
		}

		key, value, _ := strings.Cut(line, "=")
		status := strings.ToLower(strings.TrimSuffix(strings.TrimSpace(key), statusSuffix))
		lgd[strings.TrimSpace(value)] = status
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading legend: %w", err)
	}

	return lgd, nil
}

// LoadFile loads a legend from a file on disk.
func LoadFile(path string) (Legend, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening legend file: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Status looks up the canonical status for a colour token.
func (l Legend) Status(color string) (string, bool) {
	status, ok := l[color]
	return status, ok
}
