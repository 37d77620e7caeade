// Package probing provides small helpers for reading proc-style files.
package probing

import (
	"os"
	"strconv"
	"strings"
)

// File reads a file and returns its content as a string.
func File(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FileLines reads a file into lines.
func FileLines(path string) ([]string, error) {
	v, err := File(path)
	if err != nil {
		return nil, err
	}
	return strings.Split(v, "\n"), nil
}

// FileKV reads a key-value file like /proc/meminfo.
func FileKV(path, sep string) (map[string]string, error) {
	lines, err := FileLines(path)
	if err != nil {
		return nil, err
	}
	kv := make(map[string]string)
	for _, line := range lines {
		idx := strings.Index(line, sep)
		if idx != -1 {
			key := strings.TrimSpace(line[:idx])
			val := strings.TrimSpace(line[idx+len(sep):])
			kv[key] = val
		}
	}
	return kv, nil
}

// ParseInt64 parses a trimmed string as int64.
func ParseInt64(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}

// ParseFloat64 parses a trimmed string as float64.
func ParseFloat64(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// Exists checks if a path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
