package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"abstracta/internal/model"
	"abstracta/internal/ui"
	"abstracta/internal/watcher"

	"github.com/spf13/cobra"
)

func watchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-check a document every time it is saved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			svc := a.files()
			out := cmd.OutOrStdout()

			m, err := svc.ImportFile(path)
			report(out, path, m, err)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			w := watcher.New(path, svc.ImportFile, func(m *model.Model, err error) {
				report(out, path, m, err)
			}).WithDebounce(a.cfg.Watch.Debounce.Duration())

			ui.Subtle.Fprintf(out, "  watching %s, press Ctrl-C to stop\n", path)
			if err := w.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}

func report(w io.Writer, path string, m *model.Model, err error) {
	stamp := ui.Subtle.Sprint(time.Now().Format(time.TimeOnly))
	if err != nil {
		fmt.Fprintf(w, "%s %s %v\n", stamp, ui.StatusIcon(false), err)
		return
	}
	fmt.Fprintf(w, "%s %s %s: %d nodes, %d connections\n",
		stamp, ui.StatusIcon(true), path, m.Len()-1, len(m.Connections()))
	for _, warning := range lint(m) {
		fmt.Fprintf(w, "  %s %s\n", ui.WarnIcon(), warning)
	}
}
