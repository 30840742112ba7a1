package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DevakumarJayaraman/gradle-plugins-suite/internal/adapters/outbound/catalog"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Version catalog commands",
		Long:  "Commands for generating and checking the central version catalog (gradle/libs.versions.toml).",
	}
	cmd.AddCommand(newCatalogInitCmd())
	cmd.AddCommand(newCatalogVerifyCmd())
	return cmd
}

func newCatalogInitCmd() *cobra.Command {
	var (
		path  string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter gradle/libs.versions.toml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dest, err := catalog.New().Init(path, force)
			if err != nil {
				return fmt.Errorf("initializing catalog: %w", err)
			}
			logger.Info("catalog written", "path", dest)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", ".", "Project path")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing catalog")

	return cmd
}

func newCatalogVerifyCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the catalog for dangling version references",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dangling, err := catalog.New().Verify(path)
			if err != nil {
				return fmt.Errorf("verifying catalog: %w", err)
			}
			if len(dangling) == 0 {
				logger.Info("catalog verified, all version references resolve")
				return nil
			}
			for _, d := range dangling {
				logger.Error(fmt.Sprintf("dangling version reference: %s", d))
			}
			return fmt.Errorf("catalog verification failed: %d dangling version reference(s)", len(dangling))
		},
	}

	cmd.Flags().StringVar(&path, "path", ".", "Project path")

	return cmd
}
