package words

import "fmt"

// ScoreFunc assigns a score to a single word. Higher is better.
type ScoreFunc func(word string) float64

// LetterFrequencies counts, for each letter, how many words contain it.
// A letter appearing twice in one word is counted once.
func LetterFrequencies(words []string) map[rune]int {
	freqs := make(map[rune]int)
	for _, word := range words {
		for letter := range uniqueLetters(word) {
			freqs[letter]++
		}
	}
	return freqs
}

// LetterScores normalizes document frequencies into probabilities:
// P(letter) = fraction of words containing the letter.
func LetterScores(freqs map[rune]int, total int) (map[rune]float64, error) {
	if total <= 0 {
		return nil, fmt.Errorf("words: total word count must be positive, got %d", total)
	}
	scores := make(map[rune]float64, len(freqs))
	for letter, count := range freqs {
		scores[letter] = float64(count) / float64(total)
	}
	return scores, nil
}

// ScoreByLetters sums the scores of each unique letter in the word.
func ScoreByLetters(word string, letterScores map[rune]float64) float64 {
	var sum float64
	for letter := range uniqueLetters(word) {
		sum += letterScores[letter]
	}
	return sum
}

// PositionalFrequencies counts how often each letter appears at each index.
// Words longer than length contribute only their first length letters;
// Load guarantees uniform length so this does not arise in practice.
func PositionalFrequencies(words []string, length int) map[rune][]int {
	counts := make(map[rune][]int)
	for _, word := range words {
		for idx, letter := range []rune(word) {
			if idx >= length {
				break
			}
			if counts[letter] == nil {
				counts[letter] = make([]int, length)
			}
			counts[letter][idx]++
		}
	}
	return counts
}

// PositionalScores normalizes positional counts to probabilities.
func PositionalScores(freqs map[rune][]int, total int) (map[rune][]float64, error) {
	if total <= 0 {
		return nil, fmt.Errorf("words: total word count must be positive, got %d", total)
	}
	scores := make(map[rune][]float64, len(freqs))
	for letter, counts := range freqs {
		perIndex := make([]float64, len(counts))
		for idx, count := range counts {
			perIndex[idx] = float64(count) / float64(total)
		}
		scores[letter] = perIndex
	}
	return scores, nil
}

// ScoreByPosition sums P(letter|index) over the word. Words with repeated
// letters score zero: a duplicate wastes a slot that could probe a new
// letter.
func ScoreByPosition(word string, posScores map[rune][]float64) float64 {
	runes := []rune(word)
	if len(uniqueLetters(word)) < len(runes) {
		return 0
	}
	var sum float64
	for idx, letter := range runes {
		if perIndex, ok := posScores[letter]; ok && idx < len(perIndex) {
			sum += perIndex[idx]
		}
	}
	return sum
}

// NewHybridScorer returns a scorer blending the aggregate and positional
// components:
//
//	blended = (1-blend)*(agg/aggMax) + blend*(pos/posMax)
//
// Each component is normalized by its maximum over the word list so the
// blend factor weighs comparable quantities. blend must be in [0, 1].
func NewHybridScorer(
	aggScores map[rune]float64,
	posScores map[rune][]float64,
	words []string,
	blend float64,
) (ScoreFunc, error) {
	if blend < 0 || blend > 1 {
		return nil, fmt.Errorf("words: blend factor must be between 0 and 1, got %g", blend)
	}

	aggMax, posMax := 1.0, 1.0
	for i, word := range words {
		agg := ScoreByLetters(word, aggScores)
		pos := ScoreByPosition(word, posScores)
		if i == 0 || agg > aggMax {
			aggMax = agg
		}
		if i == 0 || pos > posMax {
			posMax = pos
		}
	}
	if aggMax == 0 {
		aggMax = 1
	}
	if posMax == 0 {
		posMax = 1
	}

	return func(word string) float64 {
		aggNorm := ScoreByLetters(word, aggScores) / aggMax
		posNorm := ScoreByPosition(word, posScores) / posMax
		return (1-blend)*aggNorm + blend*posNorm
	}, nil
}

// uniqueLetters returns the set of distinct runes in the word.
func uniqueLetters(word string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(word))
	for _, r := range word {
		set[r] = struct{}{}
	}
	return set
}
