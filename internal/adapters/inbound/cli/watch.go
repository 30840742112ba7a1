package cli

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/DevakumarJayaraman/gradle-plugins-suite/internal/adapters/outbound/tui"
)

var watchSkipDirs = map[string]bool{
	".git":    true,
	".gradle": true,
	".idea":   true,
	"build":   true,
	"out":     true,
}

func newWatchCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-run the audit whenever a build file changes",
		Long:  "Watch the project tree and re-run the dependency version audit on every build-file change. Violations are reported but never fail the process; interrupt to stop.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("starting watcher: %w", err)
			}
			defer watcher.Close()

			if err := addWatchRecursive(watcher, path); err != nil {
				return fmt.Errorf("watching %s: %w", path, err)
			}

			runAudit := func() {
				report, err := newAuditService().Audit(path)
				if err != nil {
					logger.Error(err.Error())
					return
				}
				for _, w := range report.Warnings {
					logger.Warn(w)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
			}

			logger.Info("watching for build file changes", "path", path)
			runAudit()

			// Editors fire bursts of events per save; debounce them into
			// one audit per settle.
			const debounce = 300 * time.Millisecond
			var timer *time.Timer
			for {
				select {
				case event, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if event.Op&fsnotify.Create != 0 {
						// New directories need their own watch.
						_ = addWatchRecursive(watcher, event.Name)
					}
					if !isBuildFileEvent(event.Name) {
						continue
					}
					if timer != nil {
						timer.Stop()
					}
					timer = time.AfterFunc(debounce, runAudit)
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					logger.Warn("watch error", "err", err)
				}
			}
		},
	}

	cmd.Flags().StringVar(&path, "path", ".", "Project path to watch")

	return cmd
}

func addWatchRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if watchSkipDirs[d.Name()] {
			return filepath.SkipDir
		}
		return w.Add(path)
	})
}

func isBuildFileEvent(name string) bool {
	return strings.HasSuffix(name, ".gradle") || strings.HasSuffix(name, ".gradle.kts")
}
