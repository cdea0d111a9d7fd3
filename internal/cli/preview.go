package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	cliadapter "github.com/example/resmaker/internal/adapters/cli"
	"github.com/example/resmaker/internal/adapters/filesystem"
	"github.com/example/resmaker/internal/wire"
)

// PreviewCmd returns the preview command
func PreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <file>",
		Short: "Print the generated scripts without writing them",
		Long: `Render the up and down scripts of a resource description to stdout.

With --watch the scripts are rendered again each time the file is saved.
Saves that do not change the scripts print nothing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			up, _ := cmd.Flags().GetBool("up")
			down, _ := cmd.Flags().GetBool("down")
			watch, _ := cmd.Flags().GetBool("watch")

			path := args[0]
			sel := selectionFromFlags(up, down)
			adapter := wire.ResourceAdapterWithOutput(cmd.OutOrStdout())

			if !watch {
				desc, err := wire.DescriptionStore().Load(cmd.Context(), path)
				if err != nil {
					return err
				}
				if _, err := adapter.Preview(cmd.Context(), desc, sel); err != nil {
					return errInvalid
				}
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return watchPreview(ctx, cmd, adapter, path, sel)
		},
	}

	cmd.Flags().Bool("up", false, "Print only the up script")
	cmd.Flags().Bool("down", false, "Print only the down script")
	cmd.Flags().BoolP("watch", "w", false, "Re-render whenever the file changes")
	return cmd
}

func watchPreview(ctx context.Context, cmd *cobra.Command, adapter *cliadapter.ResourceAdapter, path string, sel cliadapter.ScriptSelection) error {
	errOut := cmd.ErrOrStderr()
	var digest string

	refresh := func() {
		desc, err := wire.DescriptionStore().Load(ctx, path)
		if err != nil {
			fmt.Fprintf(errOut, "! %v\n", err)
			return
		}
		// Field errors are printed by the adapter; keep watching.
		digest, _, _ = adapter.PreviewIfChanged(ctx, desc, sel, digest)
	}

	refresh()
	fmt.Fprintf(errOut, "Watching %s (Ctrl+C to stop)\n", path)
	return filesystem.WatchFile(ctx, path, filesystem.DefaultDebounce, refresh)
}
