// Package main provides the entry point for the wordrank CLI.
//
// wordrank ranks opening guesses for letter games by how informative
// their letters are across a word list.
//
// Usage:
//
//	wordrank words.txt
//	wordrank --ranking hybrid --blend 0.1 --top 20 words.txt
//
// See --help for all available options.
package main

// main is the entry point for wordrank.
func main() {
	Execute()
}
