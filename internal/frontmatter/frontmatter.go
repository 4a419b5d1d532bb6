// Package frontmatter isolates the delimited metadata block at the start
// of a daily-note file and splits it into key/value pairs.
package frontmatter

import (
	"bufio"
	"strings"
)

// delimiter is a line consisting solely of three hyphens.
const delimiter = "---"

// Pair is one key/value line from a metadata block.
type Pair struct {
	Key   string
	Value string
}

// Extract locates the first block delimited by a pair of "---" lines in
// text and returns its key/value lines. A file without a metadata block
// (or with an unterminated one) yields an empty slice, never an error.
//
// Inner lines without a colon are discarded. For lines with a colon, the
// key is the trimmed text before the first colon and the value is the
// trimmed remainder with any further colons preserved verbatim, so
// time-of-day values like "23:30" survive intact.
func Extract(text string) []Pair {
	lines := blockLines(text)
	var pairs []Pair
	for _, line := range lines {
		idx := strings.Index(line, ":")
		if idx < 0 {
			continue
		}
		pairs = append(pairs, Pair{
			Key:   strings.TrimSpace(line[:idx]),
			Value: strings.TrimSpace(line[idx+1:]),
		})
	}
	return pairs
}

// blockLines returns the non-empty trimmed lines between the first pair of
// delimiter lines, or nil when no complete block exists.
func blockLines(text string) []string {
	scanner := bufio.NewScanner(strings.NewReader(text))

	var inner []string
	inBlock := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == delimiter {
			if inBlock {
				return inner
			}
			inBlock = true
			continue
		}
		if inBlock && line != "" {
			inner = append(inner, line)
		}
	}
	// No closing delimiter: treat as no block.
	return nil
}
