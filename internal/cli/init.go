package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/resmaker/internal/adapters/filesystem"
	"github.com/example/resmaker/internal/config"
	"github.com/example/resmaker/internal/core/resource"
	"github.com/example/resmaker/internal/db"
	"github.com/example/resmaker/internal/wire"
)

// SampleFileName is the description written by init --sample.
const SampleFileName = "resources.yaml"

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize resmaker in the current directory",
		Long: `Write .resmaker/config.json with the default schema and locales and
create the history database.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			sample, _ := cmd.Flags().GetBool("sample")

			dir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
			out := cmd.OutOrStdout()

			if _, err := os.Stat(config.Path(dir)); err == nil && !force {
				fmt.Fprintf(out, "Config already exists at %s (use --force to overwrite)\n", config.Path(dir))
			} else {
				if err := config.SaveConfig(dir, config.Default()); err != nil {
					return err
				}
				fmt.Fprintf(out, "✓ Config written to %s\n", config.Path(dir))
			}

			dbPath, err := wire.HistoryPath()
			if err != nil {
				return fmt.Errorf("failed to get database path: %w", err)
			}
			database, err := db.Open(dbPath)
			if err != nil {
				return err
			}
			database.Close()
			fmt.Fprintf(out, "✓ History database ready at %s\n", dbPath)

			if sample {
				if err := writeSample(cmd.Context(), SampleFileName); err != nil {
					return err
				}
				fmt.Fprintf(out, "✓ Sample description written to %s\n", SampleFileName)
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, "Next steps:")
			fmt.Fprintf(out, "  resmaker preview %s\n", SampleFileName)
			fmt.Fprintf(out, "  resmaker generate %s --out migrations\n", SampleFileName)
			return nil
		},
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing config")
	cmd.Flags().Bool("sample", false, "Also write a sample "+SampleFileName)
	return cmd
}

func writeSample(ctx context.Context, path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to check %s: %w", path, err)
	}

	return filesystem.NewDescriptionStore().Save(ctx, path, sampleDescription())
}

func sampleDescription() resource.Description {
	return resource.Description{
		FileName:         "combo orders",
		GroupName:        "comboOrders",
		GroupDescription: "Combo order screen",
		Keys: []resource.Key{
			{
				Name:          "chooseCombo",
				Description:   "Combo picker label",
				PrimaryText:   "Escolha o combo",
				SecondaryText: "Elija el combo",
			},
		},
	}
}
