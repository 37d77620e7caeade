// Package logscan streams a log file and counts keyword matches.
package logscan

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

const (
	defaultBufferSize = 64 * 1024
	maxLineSize       = 10 * 1024 * 1024

	truncationMarker = "...(truncated)"
)

// Options controls one scan.
type Options struct {
	// Keywords to match. Empty defaults to {"error"}.
	Keywords []string
	// CaseSensitive disables the default case folding.
	CaseSensitive bool
	// SampleLimit caps how many matching lines are kept.
	SampleLimit int
	// MaxLineLength truncates longer lines before matching. Zero
	// means no truncation.
	MaxLineLength int
}

// Sample is one captured matching line.
type Sample struct {
	LineNo  int
	Keyword string
	Text    string
}

// Finding is the aggregated result of one scan.
type Finding struct {
	File         string
	Keywords     []string
	TotalLines   int
	MatchedLines int
	ByKeyword    map[string]int
	Samples      []Sample
}

// TopKeyword returns the keyword with the most hits, ties broken by
// name, and false when nothing matched.
func (f *Finding) TopKeyword() (string, int, bool) {
	best, bestCount := "", 0
	for _, kw := range f.Keywords {
		c := f.ByKeyword[kw]
		if c > bestCount || (c == bestCount && c > 0 && kw < best) {
			best, bestCount = kw, c
		}
	}
	return best, bestCount, bestCount > 0
}

// Scan reads the file line by line in a single pass. A line matching
// several keywords counts once toward MatchedLines but increments
// each keyword's count; the first matching keyword labels the
// sample. Open and read failures are returned to the caller.
func Scan(path string, opts Options) (*Finding, error) {
	keywords := opts.Keywords
	if len(keywords) == 0 {
		keywords = []string{"error"}
	}

	needles := make([]string, len(keywords))
	for i, kw := range keywords {
		if opts.CaseSensitive {
			needles[i] = kw
		} else {
			needles[i] = strings.ToLower(kw)
		}
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat log: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("open log: %s is a directory", path)
	}

	f := &Finding{
		File:      path,
		Keywords:  keywords,
		ByKeyword: make(map[string]int, len(keywords)),
	}
	for _, kw := range keywords {
		f.ByKeyword[kw] = 0
	}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, defaultBufferSize), maxLineSize)

	for scanner.Scan() {
		f.TotalLines++
		line := scanner.Text()
		if opts.MaxLineLength > 0 && len(line) > opts.MaxLineLength {
			line = line[:opts.MaxLineLength] + truncationMarker
		}

		haystack := line
		if !opts.CaseSensitive {
			haystack = strings.ToLower(line)
		}

		matched := false
		for i, needle := range needles {
			if !strings.Contains(haystack, needle) {
				continue
			}
			f.ByKeyword[keywords[i]]++
			if !matched && len(f.Samples) < opts.SampleLimit {
				f.Samples = append(f.Samples, Sample{
					LineNo:  f.TotalLines,
					Keyword: keywords[i],
					Text:    line,
				})
			}
			matched = true
		}
		if matched {
			f.MatchedLines++
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	return f, nil
}
