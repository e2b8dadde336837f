package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/trivia/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show past attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		limit, _ := cmd.Flags().GetInt("limit")

		cfg, err := resolveConfig(cmd)
		if err != nil {
			return fmt.Errorf("resolve config: %w", err)
		}
		st, err := store.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		repo := st.AttemptRepo()
		sum, err := repo.Summary(ctx)
		if err != nil {
			return fmt.Errorf("summarize attempts: %w", err)
		}
		out := cmd.OutOrStdout()
		if sum.Count == 0 {
			fmt.Fprintln(out, "No attempts yet.")
			return nil
		}

		rows, err := repo.Recent(ctx, limit)
		if err != nil {
			return fmt.Errorf("list attempts: %w", err)
		}

		fmt.Fprintf(out, "%-17s  %-20s  %5s  %4s\n", "Finished", "Name", "Score", "%")
		fmt.Fprintln(out, strings.Repeat("─", 52))
		for _, a := range rows {
			name := truncateName(a.UserName, 20)
			fmt.Fprintf(out, "%-17s  %-20s  %2d/%-2d  %3d%%\n",
				a.FinishedAt.Local().Format("2006-01-02 15:04"), name, a.Score, a.Total, a.Percentage)
		}
		fmt.Fprintf(out, "\n%d attempts, best %d%%, average %.0f%%\n", sum.Count, sum.Best, sum.Average)
		return nil
	},
}

// truncateName shortens s to at most n runes, ending in "...".
func truncateName(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func init() {
	statsCmd.Flags().Int("limit", 10, "Number of recent attempts to show (0 for all)")
}
