package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <file>",
		Short: "Recompute and print scores every time a graph document changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			fw, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("watch: %w", err)
			}
			defer fw.Close()

			// Editors often save by renaming a temp file over the target,
			// which drops a watch on the file itself.
			if err := fw.Add(filepath.Dir(path)); err != nil {
				return fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
			}

			out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
			recompute := func() {
				res, err := a.computeFile(cmd.Context(), path)
				if err != nil {
					a.log.Warn("recompute failed", zap.String("file", path), zap.Error(err))
					fmt.Fprintf(errOut, "✗ %v\n", err)
					return
				}
				if err := a.render(out, res); err != nil {
					a.log.Error("render failed", zap.Error(err))
				}
			}

			recompute()
			a.log.Info("watching", zap.String("file", path), zap.Duration("debounce", a.cfg.WatchDebounce))
			return watchLoop(cmd.Context(), fw.Events, fw.Errors, path, a.cfg.WatchDebounce, recompute, a.log)
		},
	}
}

// watchLoop calls onChange once per burst of writes to target, after
// debounce has passed without a further write. It returns when ctx is done
// or the event stream closes.
func watchLoop(
	ctx context.Context,
	events <-chan fsnotify.Event,
	errs <-chan error,
	target string,
	debounce time.Duration,
	onChange func(),
	log *zap.Logger,
) error {
	target = filepath.Clean(target)
	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			log.Debug("graph file changed", zap.String("file", ev.Name), zap.String("op", ev.Op.String()))
			timer.Reset(debounce)
			fire = timer.C

		case <-fire:
			fire = nil
			onChange()

		case err, ok := <-errs:
			if !ok {
				return nil
			}
			// Non-fatal; keep watching.
			log.Warn("watch error", zap.Error(err))
		}
	}
}
