// Package main provides the entry point for the wordrank CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/starikov/sitetools/internal/words"
	"golang.org/x/sync/errgroup"
)

// Ranking selector values accepted by --ranking.
const (
	rankingAggregate  = "aggregate"
	rankingPositional = "positional"
	rankingHybrid     = "hybrid"
	rankingAll        = "all"
)

// NewRootCmd creates the root command for wordrank.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordrank [words.txt]",
		Short: "Rank opening guesses by letter frequency",
		Long: `wordrank scores every word in a list by how common its letters are.

Three rankings are available: aggregate (how many words contain each
letter), positional (how often each letter lands at each index; words
with repeated letters score zero), and hybrid (a normalized blend of
the two).

Examples:
  # All three leaderboards
  wordrank words.txt

  # Positional ranking only, top 20
  wordrank --ranking positional --top 20 words.txt

  # Heavier positional weighting in the hybrid blend
  wordrank --ranking hybrid --blend 0.25 words.txt`,
		Args:          cobra.ExactArgs(1),
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRankCmd,
	}

	cmd.Flags().IntP("length", "l", words.DefaultLength,
		"Word length to rank")
	cmd.Flags().IntP("top", "n", words.DefaultTopN,
		"Number of words per leaderboard")
	cmd.Flags().Float64P("blend", "b", words.DefaultBlend,
		"Hybrid blend factor: 0 = aggregate only, 1 = positional only")
	cmd.Flags().StringP("ranking", "r", rankingAll,
		"Which ranking to print: aggregate, positional, hybrid, or all")

	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runRankCmd executes the ranking.
func runRankCmd(cmd *cobra.Command, args []string) error {
	length, err := cmd.Flags().GetInt("length")
	if err != nil {
		return err
	}
	topN, err := cmd.Flags().GetInt("top")
	if err != nil {
		return err
	}
	if topN <= 0 {
		return fmt.Errorf("top must be positive, got %d", topN)
	}
	blend, err := cmd.Flags().GetFloat64("blend")
	if err != nil {
		return err
	}
	ranking, err := cmd.Flags().GetString("ranking")
	if err != nil {
		return err
	}
	switch ranking {
	case rankingAggregate, rankingPositional, rankingHybrid, rankingAll:
	default:
		return fmt.Errorf("unknown ranking %q (want aggregate, positional, hybrid, or all)", ranking)
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()

	list, err := words.Load(f, length)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		return fmt.Errorf("no %d-letter words found in %s", length, args[0])
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d words from %s\n", len(list), args[0])

	return printRankings(cmd, list, ranking, topN, blend)
}

// printRankings computes the requested leaderboards and prints them in
// fixed order: aggregate, positional, hybrid. The three rankings are
// independent, so they are computed concurrently.
func printRankings(cmd *cobra.Command, list []string, ranking string, topN int, blend float64) error {
	length := len([]rune(list[0]))
	total := len(list)

	aggScores, err := words.LetterScores(words.LetterFrequencies(list), total)
	if err != nil {
		return err
	}
	posScores, err := words.PositionalScores(words.PositionalFrequencies(list, length), total)
	if err != nil {
		return err
	}

	// Validate the blend before spawning workers so a bad flag fails fast.
	hybrid, err := words.NewHybridScorer(aggScores, posScores, list, blend)
	if err != nil {
		return err
	}

	var aggRanking, posRanking, hybridRanking []words.Entry

	var g errgroup.Group
	if ranking == rankingAggregate || ranking == rankingAll {
		g.Go(func() error {
			aggRanking = words.Rank(list, func(w string) float64 {
				return words.ScoreByLetters(w, aggScores)
			})
			return nil
		})
	}
	if ranking == rankingPositional || ranking == rankingAll {
		g.Go(func() error {
			posRanking = words.Rank(list, func(w string) float64 {
				return words.ScoreByPosition(w, posScores)
			})
			return nil
		})
	}
	if ranking == rankingHybrid || ranking == rankingAll {
		g.Go(func() error {
			hybridRanking = words.Rank(list, hybrid)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if aggRanking != nil {
		if err := words.WriteLeaderboard(out, "Aggregate Ranking", aggRanking, topN); err != nil {
			return err
		}
	}
	if posRanking != nil {
		if err := words.WriteLeaderboard(out, "Positional Ranking", posRanking, topN); err != nil {
			return err
		}
	}
	if hybridRanking != nil {
		title := fmt.Sprintf("Hybrid Ranking (blend=%.2f)", blend)
		if err := words.WriteLeaderboard(out, title, hybridRanking, topN); err != nil {
			return err
		}
	}

	return nil
}
