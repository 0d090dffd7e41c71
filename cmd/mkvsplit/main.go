package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/zsiec/mkvsplit/internal/ingest"
	"github.com/zsiec/mkvsplit/internal/scan"
	"github.com/zsiec/mkvsplit/internal/split"
)

var version = "dev"

func main() {
	prefix := pflag.String("output-prefix", "./output/split_output", "prefix for output MKV files")
	input := pflag.String("input", "", "path to input MKV file; reads stdin if omitted")
	srtListen := pflag.String("srt-listen", "", "accept one SRT publish connection on this address instead of reading a file")
	verbose := pflag.BoolP("verbose", "v", false, "enable debug logging")
	pflag.Parse()

	level := slog.LevelInfo
	if *verbose || os.Getenv("DEBUG") != "" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("received signal, shutting down", "signal", sig)
		cancel()
	}()

	slog.Debug("mkvsplit starting", "version", version, "output_prefix", *prefix)

	if err := run(ctx, *input, *srtListen, *prefix); err != nil {
		slog.Error("mkvsplit failed", "error", err)
		os.Exit(1)
	}
}

// run acquires the input buffer, scans it for container headers, splits it
// into artifacts, and prints the summary table. Per-segment failures are
// handled inside the splitter; only acquisition failures and the no-markers
// outcome surface here.
func run(ctx context.Context, input, srtListen, prefix string) error {
	data, err := acquire(ctx, input, srtListen)
	if err != nil {
		return err
	}
	slog.Debug("input buffered", "bytes", len(data))

	offsets := scan.Offsets(data, scan.EBMLHeader)
	slog.Debug("scan complete", "markers", len(offsets))

	results, err := split.New(prefix, scan.EBMLHeader, nil).Split(data, offsets)
	if err != nil {
		return err
	}

	if table := split.Summary(results); table != "" {
		fmt.Println("\nSummary of created files:")
		fmt.Println(table)
	}
	return nil
}

func acquire(ctx context.Context, input, srtListen string) ([]byte, error) {
	switch {
	case srtListen != "":
		srv := ingest.NewSRTServer(srtListen, nil)
		var data []byte
		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			data, err = srv.Drain(ctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return data, nil
	case input != "":
		return ingest.ReadFile(input)
	default:
		slog.Info("reading from stdin")
		return ingest.ReadAll(os.Stdin)
	}
}
