package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/resmaker/internal/cli"
	"github.com/example/resmaker/internal/ctxutil"
	"github.com/example/resmaker/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "resmaker",
		Short:   "resmaker - localized resource migration generator",
		Version: version.String(),
		Long: `resmaker turns a description of localized resource strings into a
pair of SQL Server migration scripts: one that inserts the group, its keys
and their translations, and one that rolls them back.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.ValidateCmd())
	rootCmd.AddCommand(cli.PreviewCmd())
	rootCmd.AddCommand(cli.GenerateCmd())
	rootCmd.AddCommand(cli.TranslateCmd())
	rootCmd.AddCommand(cli.HistoryCmd())

	ctx := ctxutil.WithOperator(context.Background(), cli.CurrentOperator())
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
