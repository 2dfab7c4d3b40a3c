package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fedilists/list-manager/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Finalize(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	server, err := NewServer(cfg)
	if err != nil {
		return err
	}

	errs := make(chan error, 1)
	go func() {
		errs <- server.Run()
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-signals:
		fmt.Fprintf(os.Stderr, "received %s, shutting down\n", sig)
	case err := <-errs:
		if err != nil {
			return err
		}
	}

	return server.Shutdown()
}
