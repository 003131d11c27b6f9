package main

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var watchCmd = &cobra.Command{
	Use:   "watch <spec>",
	Short: "Rebuild whenever the spec file changes, reporting whether the graph fingerprint changed",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory for build artifacts")
}

func runWatch(cmd *cobra.Command, args []string) error {
	loc := args[0]
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting file watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(loc)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	ctx := cmd.Context()
	var lastFingerprint uint64
	var haveLast bool

	rebuild := func() {
		result, cfg, err := buildOnce(ctx, loc)
		if err != nil {
			logger.Error("build failed", zap.Error(err))
			return
		}
		if err := writeArtifacts(result, cfg, outDir); err != nil {
			logger.Error("writing artifacts failed", zap.Error(err))
			return
		}
		if haveLast && lastFingerprint == result.Report.Fingerprint {
			fmt.Println("rebuilt: no change in admitted edges")
		} else {
			fmt.Printf("rebuilt: fingerprint %x (%d operations)\n", result.Report.Fingerprint, result.Report.NumOperations)
		}
		lastFingerprint = result.Report.Fingerprint
		haveLast = true
	}

	rebuild()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(loc) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				rebuild()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", zap.Error(err))
		}
	}
}
