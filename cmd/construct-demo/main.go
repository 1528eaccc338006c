// Command construct-demo walks through a set of screens with the construct
// view router, clearing each screen before drawing the next.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/cholwell/construct/internal/trace"
	"github.com/cholwell/construct/pkg/construct"
)

// config holds the parsed CLI configuration for a demo run.
type config struct {
	screens    string
	logo       string
	fixedBound int
	plain      bool
	verbose    bool
}

func parseFlags() config {
	var cfg config

	flag.StringVar(&cfg.screens, "screens", "", "path to a YAML screen definition file (default: built-in screens)")
	flag.StringVar(&cfg.logo, "logo", "", "banner written above every screen")
	flag.IntVar(&cfg.fixedBound, "fixed-bound", 0, "erase this many rows between screens instead of exactly what was written")
	flag.BoolVar(&cfg.plain, "plain", false, "disable colors")
	flag.BoolVar(&cfg.verbose, "verbose", false, "log router decisions to stderr")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: construct-demo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Walks through a set of screens, reading the next choice from stdin.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()
	return cfg
}

func run(ctx context.Context, cfg config, in io.Reader, out io.Writer, errOut io.Writer) error {
	screens := defaultScreens()
	if cfg.screens != "" {
		var err error
		screens, err = loadScreens(cfg.screens)
		if err != nil {
			return err
		}
	}

	tp, err := trace.NewProvider(ctx)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Printf("trace: shutdown: %v", err)
		}
	}()

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))

	b := construct.NewBuilder().
		WithTerminal(construct.NewTerminal(out)).
		WithLogger(logger).
		WithTracerProvider(tp)
	if cfg.logo != "" {
		b.WithLogo(cfg.logo)
	}
	if cfg.fixedBound > 0 {
		b.WithClearing(construct.FixedBound(cfg.fixedBound))
	}
	if !cfg.plain {
		b.WithLogoStyle(styles.Logo).WithTitleStyle(styles.Title)
	}
	c := b.Build()

	a := newApp(screens, in, !cfg.plain)
	return c.Display(a.view(screens.start))
}

func main() {
	cfg := parseFlags()
	if err := run(context.Background(), cfg, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "construct-demo: %v\n", err)
		os.Exit(1)
	}
}
