package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/example/resmaker/internal/core/resource"
	"github.com/example/resmaker/internal/ports/primary"
	"github.com/example/resmaker/internal/wire"
)

// GenerateCmd returns the generate command
func GenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <file>",
		Short: "Write the up and down migration scripts",
		Long: `Validate a resource description and write its migration scripts:

  V<yyyyMMdd.HHmm>__<file>.sql
  V<yyyyMMdd.HHmm>__ROLLBACK_<file>.sql

or, with --zip, a single <yyyyMMdd.HHmm>__<file>.zip holding both.
Each written bundle is recorded in the local history.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outDir, _ := cmd.Flags().GetString("out")
			archive, _ := cmd.Flags().GetBool("zip")
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			noHistory, _ := cmd.Flags().GetBool("no-history")
			fileName, _ := cmd.Flags().GetString("name")

			ctx := cmd.Context()
			desc, err := wire.DescriptionStore().Load(ctx, args[0])
			if err != nil {
				return err
			}
			if fileName != "" {
				desc.FileName = fileName
			}

			_, err = wire.ResourceAdapterWithOutput(cmd.OutOrStdout()).Generate(ctx, primary.GenerateRequest{
				Description: desc,
				OutputDir:   outDir,
				Archive:     archive,
				DryRun:      dryRun,
				SkipHistory: noHistory,
			})
			if isValidationError(err) {
				return errInvalid
			}
			return err
		},
	}

	cmd.Flags().StringP("out", "o", ".", "Output directory")
	cmd.Flags().Bool("zip", false, "Write a single zip instead of two .sql files")
	cmd.Flags().Bool("dry-run", false, "Show the file names without writing anything")
	cmd.Flags().Bool("no-history", false, "Do not record the generation in the history")
	cmd.Flags().String("name", "", "Override the bundle file name of the description")
	return cmd
}

func isValidationError(err error) bool {
	var verrs resource.ValidationErrors
	return errors.As(err, &verrs)
}
