package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/example/resmaker/internal/wire"
)

// errInvalid is returned after field errors have been printed.
var errInvalid = errors.New("description is invalid")

// ValidateCmd returns the validate command
func ValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a resource description",
		Long:  "Load a YAML or JSON resource description and report every field error.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			desc, err := wire.DescriptionStore().Load(ctx, args[0])
			if err != nil {
				return err
			}

			if err := wire.ResourceAdapterWithOutput(cmd.OutOrStdout()).Validate(ctx, desc); err != nil {
				return errInvalid
			}
			return nil
		},
	}
}
