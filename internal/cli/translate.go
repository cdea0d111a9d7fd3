package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/resmaker/internal/ports/primary"
	"github.com/example/resmaker/internal/wire"
)

// TranslateCmd returns the translate command
func TranslateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translate <file>",
		Short: "Suggest secondary texts with DeepL",
		Long: `Translate the primary text of each key into the secondary locale.

Only keys without a secondary text are translated unless --all is given.
Suggestions are printed; --write saves them back into the file.
Requires DEEPL_API_KEY.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			write, _ := cmd.Flags().GetBool("write")
			all, _ := cmd.Flags().GetBool("all")

			ctx := cmd.Context()
			path := args[0]
			store := wire.DescriptionStore()

			desc, err := store.Load(ctx, path)
			if err != nil {
				return err
			}

			resp, err := wire.TranslationAdapterWithOutput(cmd.OutOrStdout()).Fill(ctx, primary.FillSecondaryRequest{
				Description: desc,
				OnlyMissing: !all,
			})
			if err != nil {
				return err
			}

			if !write {
				return nil
			}
			if err := store.Save(ctx, path, resp.Description); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Saved %s\n", path)
			return nil
		},
	}

	cmd.Flags().Bool("write", false, "Save the suggestions into the file")
	cmd.Flags().Bool("all", false, "Also translate keys that already have a secondary text")
	return cmd
}
