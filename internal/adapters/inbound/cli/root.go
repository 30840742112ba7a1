package cli

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

// logger is the shared host logging sink: audit results go to stdout, log
// lines (including per-violation errors) to stderr.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "gradleguard",
		Short:         "Keep dependency versions in the catalog, not in build files",
		Long:          "GradleGuard audits Gradle build files for hardcoded dependency versions and enforces that versions come from the central version catalog or a dependencies.constraints block.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newAuditCmd())
	cmd.AddCommand(newWatchCmd())
	cmd.AddCommand(newCatalogCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	err := newRootCmd().Execute()
	if err != nil {
		logger.Error(err.Error())
	}
	return err
}
