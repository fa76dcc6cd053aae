package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/skills"
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "List the built-in skill vocabulary",
	Long:  `Print the built-in skill vocabulary grouped by category, with the aliases each canonical skill resolves from.`,
	RunE:  runVocab,
}

func init() {
	rootCmd.AddCommand(vocabCmd)
}

func runVocab(cmd *cobra.Command, _ []string) error {
	vocab := skills.Default()
	categories := vocab.Categories()

	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	sort.Strings(names)

	out := cmd.OutOrStdout()
	for _, name := range names {
		fmt.Fprintf(out, "%s:\n", name)
		ids := append([]string(nil), categories[name]...)
		sort.Strings(ids)
		for _, id := range ids {
			if aliases := vocab.Aliases(id); len(aliases) > 0 {
				fmt.Fprintf(out, "  %s (%s)\n", id, strings.Join(aliases, ", "))
			} else {
				fmt.Fprintf(out, "  %s\n", id)
			}
		}
	}
	return nil
}
