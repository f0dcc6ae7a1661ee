package commands

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/blogbuilder/internal/logfields"
	"git.home.luguber.info/inful/blogbuilder/internal/metrics"
	"git.home.luguber.info/inful/blogbuilder/internal/preview"
	"git.home.luguber.info/inful/blogbuilder/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Out      string        `short:"o" help:"Composed configuration output file" default:"config.json" type:"path"`
	Format   string        `short:"f" help:"Output format (json|yaml); defaults from the output file extension"`
	HeadOut  string        `name:"head-out" help:"Also write the rendered head fragment to this file" type:"path"`
	Addr     string        `help:"Preview server listen address; empty disables it" default:"127.0.0.1:8787"`
	Debounce time.Duration `help:"Quiet period before rebuilding after a change" default:"300ms"`
}

func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return w.run(ctx, root)
}

func (w *WatchCmd) run(ctx context.Context, root *CLI) error {
	format, err := outputFormat(w.Format, w.Out)
	if err != nil {
		return err
	}

	reg := prom.NewRegistry()
	rec := metrics.NewPrometheusRecorder(reg)
	server := preview.NewServer(reg)

	rebuild := func(ctx context.Context) error {
		_, res, err := root.resolve(ctx, rec)
		if err == nil {
			err = writeOutputs(res, w.Out, format, w.HeadOut)
		}
		if err != nil {
			server.Fail(err)
			return err
		}
		server.Update(res)
		return nil
	}

	// The first build must succeed: it determines which theme document to watch.
	docs, res, err := root.resolve(ctx, rec)
	if err != nil {
		return err
	}
	if err := writeOutputs(res, w.Out, format, w.HeadOut); err != nil {
		return err
	}
	server.Update(res)

	watcher, err := watch.New([]string{docs.SitePath, docs.ThemePath}, w.Debounce, func(ctx context.Context) {
		if err := rebuild(ctx); err != nil {
			slog.Error("Rebuild failed; keeping last good configuration", logfields.Error(err))
		}
	})
	if err != nil {
		return err
	}

	ctx, stop := context.WithCancel(ctx)
	defer stop()

	errCh := make(chan error, 2)
	go func() { errCh <- watcher.Run(ctx) }()
	running := 1
	if w.Addr != "" {
		running++
		go func() { errCh <- server.ListenAndServe(ctx, w.Addr) }()
	}
	slog.Info("Watching for changes", logfields.Path(docs.SitePath), slog.String("theme_path", docs.ThemePath))

	// Either goroutine failing stops the other.
	var firstErr error
	for ; running > 0; running-- {
		if err := <-errCh; err != nil && firstErr == nil {
			firstErr = err
			stop()
		}
	}
	return firstErr
}
