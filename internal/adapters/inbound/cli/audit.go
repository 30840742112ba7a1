package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DevakumarJayaraman/gradle-plugins-suite/internal/adapters/outbound/catalog"
	"github.com/DevakumarJayaraman/gradle-plugins-suite/internal/adapters/outbound/config"
	"github.com/DevakumarJayaraman/gradle-plugins-suite/internal/adapters/outbound/gitinfo"
	"github.com/DevakumarJayaraman/gradle-plugins-suite/internal/adapters/outbound/history"
	"github.com/DevakumarJayaraman/gradle-plugins-suite/internal/adapters/outbound/scanner"
	"github.com/DevakumarJayaraman/gradle-plugins-suite/internal/adapters/outbound/tui"
	"github.com/DevakumarJayaraman/gradle-plugins-suite/internal/application"
	"github.com/DevakumarJayaraman/gradle-plugins-suite/internal/domain"
)

func newAuditService() *application.AuditService {
	return application.NewAuditService(
		scanner.New(),
		config.New(),
		catalog.New(),
		gitinfo.New(),
	)
}

func newAuditCmd() *cobra.Command {
	var (
		jsonOutput bool
		path       string
		file       string
	)

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Audit build files for hardcoded dependency versions",
		Long:  "Scan every *.gradle and *.gradle.kts file under the project for dependency declarations that hardcode a version or declare no version without a matching constraint. Exits non-zero when violations are found.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := newAuditService()

			var (
				report *domain.VerificationReport
				err    error
			)
			if file != "" {
				report, err = svc.AuditFile(path, file)
			} else {
				report, err = svc.Audit(path)
			}
			if err != nil {
				return fmt.Errorf("audit failed: %w", err)
			}

			// History is best-effort; a read-only checkout must not fail
			// the audit.
			if file == "" {
				if herr := history.New().Save(path, report.Entry()); herr != nil {
					logger.Warn("could not record audit history", "err", herr)
				}
			}

			return surfaceReport(cmd, report, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().StringVar(&path, "path", ".", "Project path to audit")
	cmd.Flags().StringVar(&file, "file", "", "Audit a single build file (relative to --path)")

	return cmd
}

// surfaceReport renders the report and translates its verdict into the
// process contract: one info line and nil on pass, one error line per
// violation plus a summary error on fail.
func surfaceReport(cmd *cobra.Command, report *domain.VerificationReport, jsonOutput bool) error {
	for _, w := range report.Warnings {
		logger.Warn(w)
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
	}

	if !report.Failed() {
		logger.Info(fmt.Sprintf("no direct dependency versions found (%d build files checked)", len(report.FilesScanned)))
		return nil
	}

	for _, v := range report.Violations {
		logger.Error(v.Message())
	}
	return fmt.Errorf("dependency version policy check failed: %d violation(s)", len(report.Violations))
}
