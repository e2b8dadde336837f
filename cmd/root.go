package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/trivia/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "trivia",
	Short: "Terminal trivia quiz",
	Long:  "Trivia: a twelve-question terminal quiz across four categories that remembers where you left off.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TRIVIA_DB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig reads the environment and applies the --db flag, which has
// the highest priority.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	p, _ := cmd.Flags().GetString("db")
	return config.Load(p)
}
