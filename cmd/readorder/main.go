// Command readorder prints the text of PDF content streams in reading order.
//
// Each argument is a file holding one decompressed page content stream:
//
//	readorder -config readorder.yaml -format html page1.bin page2.bin
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"golang.org/x/sync/errgroup"

	"github.com/tsawler/readorder/config"
	"github.com/tsawler/readorder/text"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// options are the parsed command line flags
type options struct {
	configPath  string
	format      string
	rtl         bool
	auto        bool
	pageHeight  float64
	concurrency int
	paths       []string
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("readorder", flag.ContinueOnError)
	fs.SetOutput(stderr)

	o := &options{}
	fs.StringVar(&o.configPath, "config", "", "Path to a YAML config file")
	fs.StringVar(&o.format, "format", "text", "Output format: text, html or json")
	fs.BoolVar(&o.rtl, "rtl", false, "Order lines right to left")
	fs.BoolVar(&o.auto, "auto", false, "Detect the line direction from the text")
	fs.Float64Var(&o.pageHeight, "page-height", 0, "Page height used to flip the y axis (overrides config)")
	fs.IntVar(&o.concurrency, "j", 0, "Number of pages processed at once (overrides config)")

	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: readorder [flags] content-stream...")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	o.paths = fs.Args()
	if len(o.paths) == 0 {
		fs.Usage()
		return nil, errors.New("no content stream files given")
	}

	if _, ok := renderers[o.format]; !ok {
		return nil, fmt.Errorf("unknown format %q", o.format)
	}

	return o, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	cfg, err := config.Load(o.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to load config: %v\n", err)
		return 1
	}
	o.override(cfg)

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	pages, err := extractAll(ctx, o.paths, cfg, logger)
	if err != nil {
		logger.Error("extraction failed", "error", err)
		return 1
	}

	if err := renderers[o.format](stdout, pages); err != nil {
		logger.Error("writing output failed", "error", err)
		return 1
	}

	return 0
}

// override applies flags that were set on top of the loaded config
func (o *options) override(cfg *config.Config) {
	if o.rtl {
		cfg.LeftToRight = false
	}
	if o.auto {
		cfg.AutoDirection = true
	}
	if o.pageHeight > 0 {
		cfg.PageHeight = o.pageHeight
	}
	if o.concurrency > 0 {
		cfg.Concurrency = o.concurrency
	}
}

// page is the result of one extraction pass
type page struct {
	Path     string   `json:"path"`
	Text     string   `json:"text"`
	Lines    []string `json:"lines"`
	Dropped  int      `json:"dropped"`
	Warnings []string `json:"warnings,omitempty"`
}

// extractAll runs one independent pass per file and returns the pages in
// argument order.
func extractAll(ctx context.Context, paths []string, cfg *config.Config, logger *slog.Logger) ([]page, error) {
	pages := make([]page, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Concurrency)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			p, err := extractFile(path, cfg, logger.With("path", path))
			if err != nil {
				return err
			}

			pages[i] = p
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return pages, nil
}

func extractFile(path string, cfg *config.Config, logger *slog.Logger) (page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return page{}, err
	}

	opts := cfg.Options(logger)
	listener := text.NewListener(opts...)

	if err := text.NewExtractor(listener, opts...).ExtractFromBytes(data); err != nil {
		return page{}, fmt.Errorf("%s: %w", path, err)
	}

	p := page{
		Path:    path,
		Text:    listener.OnRenderingComplete(),
		Dropped: listener.Dropped(),
	}

	for _, line := range listener.Lines() {
		p.Lines = append(p.Lines, line.Text)
	}

	for _, w := range listener.Warnings() {
		p.Warnings = append(p.Warnings, w.String())
	}

	logger.Info("extracted page", "lines", len(p.Lines), "dropped", p.Dropped)

	return p, nil
}
