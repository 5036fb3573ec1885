package words

import (
	"fmt"
	"io"
	"sort"
)

// Entry is one ranked word with its score.
type Entry struct {
	Word  string
	Score float64
}

// Rank scores every word and returns the list ordered by descending score,
// ties broken alphabetically.
func Rank(words []string, score ScoreFunc) []Entry {
	ranking := make([]Entry, 0, len(words))
	for _, word := range words {
		ranking = append(ranking, Entry{Word: word, Score: score(word)})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Score != ranking[j].Score {
			return ranking[i].Score > ranking[j].Score
		}
		return ranking[i].Word < ranking[j].Word
	})
	return ranking
}

// WriteLeaderboard prints the top N entries under a title line.
func WriteLeaderboard(w io.Writer, title string, ranking []Entry, topN int) error {
	if topN > len(ranking) {
		topN = len(ranking)
	}
	if _, err := fmt.Fprintf(w, "\n%s (top %d):\n", title, topN); err != nil {
		return err
	}
	for _, entry := range ranking[:topN] {
		if _, err := fmt.Fprintf(w, "  %-5s %7.5f\n", entry.Word, entry.Score); err != nil {
			return err
		}
	}
	return nil
}
