package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeWordList writes newline-separated words to a temp file.
func writeWordList(t *testing.T, words ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte(strings.Join(words, "\n")), 0600); err != nil {
		t.Fatalf("writing word list: %v", err)
	}
	return path
}

// TestNewRootCmd tests the root command creation.
func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "wordrank [words.txt]" {
			t.Errorf("unexpected use: %q", cmd.Use)
		}
	})

	t.Run("has flags", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"length", "top", "blend", "ranking"} {
			if cmd.Flags().Lookup(name) == nil {
				t.Errorf("expected %s flag", name)
			}
		}
	})

	t.Run("silences usage and errors", func(t *testing.T) {
		t.Parallel()
		if !cmd.SilenceUsage || !cmd.SilenceErrors {
			t.Error("expected SilenceUsage and SilenceErrors to be true")
		}
	})
}

// TestRunRankCmd tests ranking through the CLI.
func TestRunRankCmd(t *testing.T) {
	t.Parallel()

	t.Run("prints all three leaderboards", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		cmd := NewRootCmd()
		cmd.SetOut(&buf)
		cmd.SetArgs([]string{writeWordList(t, "crane", "slate", "moist", "added")})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("Execute() error: %v", err)
		}

		out := buf.String()
		for _, want := range []string{
			"Loaded 4 words",
			"Aggregate Ranking (top 4):",
			"Positional Ranking (top 4):",
			"Hybrid Ranking (blend=0.05) (top 4):",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}

		// Leaderboards print in fixed order regardless of which worker
		// finishes first.
		agg := strings.Index(out, "Aggregate Ranking")
		pos := strings.Index(out, "Positional Ranking")
		hyb := strings.Index(out, "Hybrid Ranking")
		if !(agg < pos && pos < hyb) {
			t.Errorf("leaderboards out of order:\n%s", out)
		}
	})

	t.Run("single ranking", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		cmd := NewRootCmd()
		cmd.SetOut(&buf)
		cmd.SetArgs([]string{"--ranking", "positional", writeWordList(t, "crane", "slate")})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("Execute() error: %v", err)
		}

		out := buf.String()
		if !strings.Contains(out, "Positional Ranking") {
			t.Errorf("output missing positional leaderboard:\n%s", out)
		}
		if strings.Contains(out, "Aggregate Ranking") || strings.Contains(out, "Hybrid Ranking") {
			t.Errorf("output contains unrequested leaderboards:\n%s", out)
		}
	})

	t.Run("respects length flag", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		cmd := NewRootCmd()
		cmd.SetOut(&buf)
		cmd.SetArgs([]string{"--length", "3", writeWordList(t, "cat", "dog", "crane")})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("Execute() error: %v", err)
		}
		if !strings.Contains(buf.String(), "Loaded 2 words") {
			t.Errorf("length filter not applied:\n%s", buf.String())
		}
	})

	t.Run("rejects bad flags", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name string
			args []string
		}{
			{"unknown ranking", []string{"--ranking", "best"}},
			{"blend above one", []string{"--blend", "1.5"}},
			{"negative blend", []string{"--blend", "-0.5"}},
			{"non-positive top", []string{"--top", "0"}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				cmd := NewRootCmd()
				cmd.SetOut(&bytes.Buffer{})
				cmd.SetArgs(append(tt.args, writeWordList(t, "crane", "slate")))

				if err := cmd.Execute(); err == nil {
					t.Error("Execute() expected an error")
				}
			})
		}
	})

	t.Run("empty word list is fatal", func(t *testing.T) {
		t.Parallel()

		cmd := NewRootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetArgs([]string{writeWordList(t, "toolong", "hi")})

		if err := cmd.Execute(); err == nil {
			t.Error("Execute() expected an error for an empty filtered list")
		}
	})

	t.Run("missing file is fatal", func(t *testing.T) {
		t.Parallel()

		cmd := NewRootCmd()
		cmd.SetArgs([]string{filepath.Join(t.TempDir(), "nope.txt")})

		if err := cmd.Execute(); err == nil {
			t.Error("Execute() expected an error for a missing word list")
		}
	})
}
