package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/peterbourgon/ff/v3"

	"wordclock/internal/clock"
	"wordclock/internal/config"
	"wordclock/internal/logger"
	"wordclock/internal/server"
	"wordclock/internal/wordclock"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	fs := flag.NewFlagSet("wordclock-serve", flag.ContinueOnError)
	flags := config.Register(fs)
	if err := ff.Parse(fs, args, config.Options()...); err != nil {
		return err
	}
	cfg, err := flags.Resolve()
	if err != nil {
		return err
	}

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

	// Stop on SIGINT or SIGTERM and let in-flight requests finish
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return srv.Run(ctx, cfg.Addr)
}
