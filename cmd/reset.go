package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/trivia/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear saved quiz progress",
	Long:  "Clear saved quiz progress. With --all the theme preference and attempt history are removed too.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		all, _ := cmd.Flags().GetBool("all")

		cfg, err := resolveConfig(cmd)
		if err != nil {
			return fmt.Errorf("resolve config: %w", err)
		}
		st, err := store.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.KV().Delete(ctx, store.KeyQuizState); err != nil {
			return fmt.Errorf("clear progress: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Quiz progress cleared.")

		if !all {
			return nil
		}
		if err := st.KV().Delete(ctx, store.KeyTheme); err != nil {
			return fmt.Errorf("clear theme: %w", err)
		}
		if err := st.AttemptRepo().DeleteAll(ctx); err != nil {
			return fmt.Errorf("clear attempts: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Theme preference and attempt history cleared.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("all", false, "Also clear theme preference and attempt history")
}
