// Package words ranks candidate opening guesses for letter games by how
// common their letters are across a word list.
//
// Three scorers are provided. The aggregate scorer sums per-letter document
// frequencies (how many words contain the letter at all). The positional
// scorer sums per-letter per-index frequencies and zeroes out words with
// repeated letters. The hybrid scorer blends the two after normalizing each
// by its maximum over the list.
package words
