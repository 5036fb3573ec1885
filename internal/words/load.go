package words

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Default tuning values, overridable from the CLI.
const (
	DefaultLength = 5
	DefaultTopN   = 100
	DefaultBlend  = 0.05
)

// Load reads newline-separated words and returns the sorted, deduplicated
// set of alphabetic words of exactly the requested length. Entries are
// NFC-normalized and lowercased first, so "Crâne" and "crâne" collapse to
// one word.
func Load(r io.Reader, length int) ([]string, error) {
	if length <= 0 {
		return nil, fmt.Errorf("words: length must be positive, got %d", length)
	}

	seen := make(map[string]struct{})
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.ToLower(norm.NFC.String(strings.TrimSpace(scanner.Text())))
		if !isAlpha(word) || len([]rune(word)) != length {
			continue
		}
		seen[word] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("words: read word list: %w", err)
	}

	list := make([]string, 0, len(seen))
	for word := range seen {
		list = append(list, word)
	}
	sort.Strings(list)
	return list, nil
}

// isAlpha reports whether s is non-empty and contains only letters.
func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
