package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/resmaker/internal/wire"
)

// HistoryCmd returns the history command
func HistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List and inspect generated bundles",
		Long:  "Show the ledger of bundles written by resmaker generate, newest first.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return historyListCmd().RunE(cmd, args)
		},
	}

	cmd.Flags().IntP("limit", "n", 20, "Maximum number of generations (0 for all)")
	cmd.AddCommand(historyListCmd())
	cmd.AddCommand(historyShowCmd())
	return cmd
}

func historyListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded generations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			_, err := wire.HistoryAdapterWithOutput(cmd.OutOrStdout()).List(cmd.Context(), limit)
			return err
		},
	}
	cmd.Flags().IntP("limit", "n", 20, "Maximum number of generations (0 for all)")
	return cmd
}

func historyShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one generation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := normalizeGenerationID(args[0])
			if err != nil {
				return err
			}
			_, err = wire.HistoryAdapterWithOutput(cmd.OutOrStdout()).Show(cmd.Context(), id)
			return err
		},
	}
}
