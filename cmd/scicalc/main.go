package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"

	"golang.org/x/term"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	a := &app{
		in:          os.Stdin,
		out:         os.Stdout,
		interactive: term.IsTerminal(int(os.Stdin.Fd())),
	}
	if err := a.command().Run(ctx, os.Args); err != nil {
		if !errors.Is(err, errFailed) {
			slog.Error("fatal", "error", err)
		}
		os.Exit(1)
	}
}
