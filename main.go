package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/peterbourgon/ff/v3/ffcli"
	"go.uber.org/zap"

	"wordclock/internal/clock"
	"wordclock/internal/config"
	"wordclock/internal/display"
	"wordclock/internal/grid"
	"wordclock/internal/logger"
	"wordclock/internal/server"
	"wordclock/internal/wordclock"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	rootFlagSet := flag.NewFlagSet("wordclock", flag.ExitOnError)

	runFlagSet := flag.NewFlagSet("wordclock run", flag.ExitOnError)
	runFlags := config.Register(runFlagSet)
	runListen := runFlagSet.Bool("listen", false, "Also serve the settings form on -addr")

	printFlagSet := flag.NewFlagSet("wordclock print", flag.ExitOnError)
	printFlags := config.Register(printFlagSet)
	printAt := printFlagSet.String("at", "", "Time to render as HH:MM (defaults to now)")
	printLeadIn := printFlagSet.String("lead-in", "random", "Lead-in phrase: random, on or off")

	serveFlagSet := flag.NewFlagSet("wordclock serve", flag.ExitOnError)
	serveFlags := config.Register(serveFlagSet)

	runCmd := &ffcli.Command{
		Name:       "run",
		ShortUsage: "wordclock run [flags]",
		ShortHelp:  "Show the word clock in the terminal",
		LongHelp:   "Controls:\n  Arrow Up/Down   Adjust brightness\n  Any other key   Exit\n\nWith -listen, settings posted to /update change the board live.",
		FlagSet:    runFlagSet,
		Options:    config.Options(),
		Exec: func(ctx context.Context, args []string) error {
			cfg, err := runFlags.Resolve()
			if err != nil {
				return err
			}
			return execClock(ctx, cfg, *runListen)
		},
	}

	printCmd := &ffcli.Command{
		Name:       "print",
		ShortUsage: "wordclock print [-at HH:MM] [flags]",
		ShortHelp:  "Print the board for one time",
		FlagSet:    printFlagSet,
		Options:    config.Options(),
		Exec: func(ctx context.Context, args []string) error {
			cfg, err := printFlags.Resolve()
			if err != nil {
				return err
			}
			return execPrint(cfg, *printAt, *printLeadIn)
		},
	}

	serveCmd := &ffcli.Command{
		Name:       "serve",
		ShortUsage: "wordclock serve [flags]",
		ShortHelp:  "Serve the settings and grid endpoints over HTTP",
		FlagSet:    serveFlagSet,
		Options:    config.Options(),
		Exec: func(ctx context.Context, args []string) error {
			cfg, err := serveFlags.Resolve()
			if err != nil {
				return err
			}
			return execServe(ctx, cfg)
		},
	}

	rootCmd := &ffcli.Command{
		ShortUsage:  "wordclock [flags] <subcommand>",
		ShortHelp:   "An 11x11 word clock that spells the time in German or dialect",
		FlagSet:     rootFlagSet,
		Subcommands: []*ffcli.Command{runCmd, printCmd, serveCmd},
		Exec: func(ctx context.Context, args []string) error {
			// Default behavior: run the terminal clock
			return runCmd.ParseAndRun(ctx, args)
		},
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ParseAndRun(ctx, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// ============================================================================
// Terminal clock (run) command
// ============================================================================

func execClock(ctx context.Context, cfg *config.Config, listen bool) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// the screen owns the terminal, so only log when sent to a file
	log := zap.NewNop()
	if cfg.Log.Output != "" {
		l, err := logger.New(cfg.Log)
		if err != nil {
			return err
		}
		defer l.Sync()
		log = l
	}

	coin := wordclock.NewRandCoin(cfg.Seed)
	r, err := wordclock.NewRenderer(cfg.Variant, coin)
	if err != nil {
		return err
	}

	var source clock.Source = clock.System{Location: cfg.Location}
	var updates chan server.Settings
	served := make(chan error, 1)
	if listen {
		// listen before the screen takes over so a bad address is reported
		ln, err := net.Listen("tcp", cfg.Addr)
		if err != nil {
			return fmt.Errorf("listening on %s: %w", cfg.Addr, err)
		}
		updates = make(chan server.Settings)
		srv, err := server.New(server.Options{
			Variant:    cfg.Variant,
			Color:      cfg.Color,
			Brightness: cfg.Brightness,
			Clock:      source,
			Coin:       wordclock.NewRandCoin(cfg.Seed + 1),
			Logger:     log,
			OnUpdate: func(st server.Settings) {
				select {
				case updates <- st:
				case <-ctx.Done():
				}
			},
		})
		if err != nil {
			ln.Close()
			return err
		}
		source = srv.Clock()
		go func() { served <- srv.Serve(ctx, ln) }()
	} else {
		served <- nil
	}

	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	s.HideCursor()

	driver := display.NewTerminal(s, r.Catalog(), cfg.Color, cfg.Brightness)
	defer driver.Close()

	events := make(chan tcell.Event, 10)
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	l := &clockLoop{
		driver:   driver,
		renderer: r,
		coin:     coin,
		source:   source,
		refresh:  cfg.Refresh,
		updates:  updates,
		log:      log,
	}
	runErr := l.run(ctx, events)
	cancel()
	if err := <-served; err != nil && runErr == nil {
		return err
	}
	return runErr
}

// clockLoop renders once per refresh into a grid it owns and pushes it to
// the board. Settings arriving on updates are applied and drawn at once.
type clockLoop struct {
	driver   display.Board
	renderer *wordclock.Renderer
	coin     wordclock.Coin
	source   clock.Source
	refresh  time.Duration
	updates  <-chan server.Settings
	log      *zap.Logger

	grid grid.Grid
}

func (l *clockLoop) tick() error {
	now := l.source.Now()
	p := l.renderer.Render(&l.grid, now.Hour(), now.Minute())
	l.log.Debug("rendered", zap.String("time", now.Format("15:04")), zap.String("phrase", p.String()))
	return l.driver.Show(&l.grid)
}

// apply switches the board to st and redraws.
func (l *clockLoop) apply(st server.Settings) error {
	if st.Variant != l.renderer.Variant() {
		r, err := wordclock.NewRenderer(st.Variant, l.coin)
		if err != nil {
			return err
		}
		l.renderer = r
		l.driver.SetCatalog(r.Catalog())
	}
	l.driver.SetColor(st.Color)
	l.driver.SetBrightness(st.Brightness)
	return l.tick()
}

// run ticks until ctx ends or a key other than Up/Down arrives. A nil
// updates channel never delivers.
func (l *clockLoop) run(ctx context.Context, events <-chan tcell.Event) error {
	if err := l.tick(); err != nil {
		return err
	}

	ticker := time.NewTicker(l.refresh)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case st := <-l.updates:
			if err := l.apply(st); err != nil {
				return err
			}
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch ev.Key() {
				case tcell.KeyUp:
					l.driver.SetBrightness(l.driver.Brightness() + display.BrightnessStep)
				case tcell.KeyDown:
					l.driver.SetBrightness(l.driver.Brightness() - display.BrightnessStep)
				default:
					return nil
				}
				if err := l.driver.Show(&l.grid); err != nil {
					return err
				}
			case *tcell.EventResize:
				if err := l.driver.Show(&l.grid); err != nil {
					return err
				}
			}
		case <-ticker.C:
			if err := l.tick(); err != nil {
				return err
			}
		}
	}
}

// ============================================================================
// Print command
// ============================================================================

func execPrint(cfg *config.Config, at, leadIn string) error {
	now := clock.System{Location: cfg.Location}.Now()
	hour, minute := now.Hour(), now.Minute()
	if at != "" {
		t, err := time.Parse("15:04", at)
		if err != nil {
			return fmt.Errorf("parsing -at %q: %w", at, err)
		}
		hour, minute = t.Hour(), t.Minute()
	}

	var coin wordclock.Coin
	switch leadIn {
	case "random":
		coin = wordclock.NewRandCoin(cfg.Seed)
	case "on":
		coin = wordclock.Fixed(true)
	case "off":
		coin = wordclock.Fixed(false)
	default:
		return fmt.Errorf("-lead-in must be random, on or off, got %q", leadIn)
	}

	r, err := wordclock.NewRenderer(cfg.Variant, coin)
	if err != nil {
		return err
	}

	var g grid.Grid
	p := r.Render(&g, hour, minute)
	fmt.Printf("%02d:%02d  %s\n\n", hour, minute, p)
	var d display.Driver = display.NewText(os.Stdout, r.Catalog())
	defer d.Close()
	return d.Show(&g)
}

// ============================================================================
// Serve command
// ============================================================================

func execServe(ctx context.Context, cfg *config.Config) error {
	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer log.Sync()

	srv, err := server.New(server.Options{
		Variant:    cfg.Variant,
		Color:      cfg.Color,
		Brightness: cfg.Brightness,
		Clock:      clock.System{Location: cfg.Location},
		Coin:       wordclock.NewRandCoin(cfg.Seed),
		Logger:     log,
	})
	if err != nil {
		return err
	}
	return srv.Run(ctx, cfg.Addr)
}
