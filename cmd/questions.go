package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/trivia/internal/questions"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the question bank (optionally filtered by category)",
	RunE: func(cmd *cobra.Command, args []string) error {
		catVal, _ := cmd.Flags().GetString("category")

		bank, err := questions.Default()
		if err != nil {
			return fmt.Errorf("load questions: %w", err)
		}

		qs := bank.All()
		if catVal != "" {
			cat, err := questions.ParseCategory(catVal)
			if err != nil {
				return err
			}
			qs = bank.ByCategory(cat)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%3s  %-10s  %s\n", "ID", "Category", "Question")
		fmt.Fprintln(out, strings.Repeat("─", 80))
		for _, q := range qs {
			fmt.Fprintf(out, "%3d  %-10s  %s\n", q.ID, q.Category.DisplayName(), q.Prompt)
		}
		fmt.Fprintf(out, "\n%d questions\n", len(qs))
		return nil
	},
}

func init() {
	questionsCmd.Flags().String("category", "", "Only show one category (general, science, history, geography)")
}
