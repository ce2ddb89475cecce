package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/zephyrtronium/scicalc"
	"github.com/zephyrtronium/scicalc/internal/config"
	"github.com/zephyrtronium/scicalc/keypad"
)

// errFailed reports that some expression failed after its error was already
// printed.
var errFailed = errors.New("evaluation failed")

type app struct {
	in          io.Reader
	out         io.Writer
	interactive bool
}

// settings is the merged result of the config file and flags.
type settings struct {
	mode scicalc.AngleMode
	echo bool
}

func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:      "scicalc",
		Usage:     "Evaluate calculator expressions",
		ArgsUsage: "[expression...]",
		Description: "Each argument is evaluated and printed. With no arguments, expressions\n" +
			"are read from stdin one per line. Put -- before expressions that begin with -.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file",
				Value:   config.DefaultPath(),
			},
			&cli.StringFlag{
				Name:    "mode",
				Aliases: []string{"m"},
				Usage:   "Angle mode for sin, cos, tan: degrees or radians",
				Sources: cli.EnvVars("SCICALC_MODE"),
			},
			&cli.BoolFlag{
				Name:  "echo",
				Usage: "Print parse trees before results",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},
		Commands: []*cli.Command{
			a.keysCommand(),
			a.symbolsCommand(),
		},
		Action: a.runEval,
	}
}

func (a *app) keysCommand() *cli.Command {
	return &cli.Command{
		Name:      "keys",
		Usage:     "Press calculator buttons in order and print the display",
		ArgsUsage: "<label>...",
		Action: func(_ context.Context, cmd *cli.Command) error {
			s, err := setup(cmd)
			if err != nil {
				return err
			}
			pad := keypad.New(keypad.WithMode(s.mode), keypad.WithLogger(slog.Default()))
			failed := false
			for _, label := range cmd.Args().Slice() {
				if err := pad.Press(label); err != nil {
					fmt.Fprintln(a.out, err)
					failed = true
				}
			}
			fmt.Fprintln(a.out, pad.Text())
			if failed {
				return errFailed
			}
			return nil
		},
	}
}

func (a *app) symbolsCommand() *cli.Command {
	return &cli.Command{
		Name:  "symbols",
		Usage: "List the constants and functions expressions can use",
		Action: func(_ context.Context, _ *cli.Command) error {
			w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tKIND")
			for _, name := range scicalc.Symbols() {
				kind := "function"
				if n, _ := scicalc.Arity(name); n == 0 {
					kind = "constant"
				}
				fmt.Fprintf(w, "%s\t%s\n", name, kind)
			}
			return w.Flush()
		},
	}
}

// setup loads the config file, merges flags over it, and installs the
// default logger.
func setup(cmd *cli.Command) (settings, error) {
	root := cmd.Root()
	cfg, err := config.Load(root.String("config"))
	if err != nil {
		return settings{}, err
	}
	level, _ := config.ParseLevel(cfg.LogLevel)
	if root.Bool("debug") {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	s := settings{mode: cfg.Mode(), echo: cfg.Echo || root.Bool("echo")}
	if v := root.String("mode"); v != "" {
		m, err := scicalc.ParseAngleMode(v)
		if err != nil {
			return settings{}, err
		}
		s.mode = m
	}
	slog.Debug("settings", "mode", s.mode, "echo", s.echo)
	return s, nil
}

func (a *app) runEval(ctx context.Context, cmd *cli.Command) error {
	s, err := setup(cmd)
	if err != nil {
		return err
	}
	if cmd.Args().Len() == 0 {
		return a.repl(ctx, s)
	}
	failed := 0
	for _, expr := range cmd.Args().Slice() {
		if err := a.evalLine(expr, s); err != nil {
			failed++
		}
	}
	if failed > 0 {
		slog.Debug("expressions failed", "failed", failed, "total", cmd.Args().Len())
		return errFailed
	}
	return nil
}

// repl evaluates stdin line by line. Lines starting with : are commands.
func (a *app) repl(ctx context.Context, s settings) error {
	sc := bufio.NewScanner(a.in)
	failed := false
	for a.prompt(s); sc.Scan(); a.prompt(s) {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(sc.Text())
		switch line {
		case "":
			continue
		case ":deg", ":degrees":
			s.mode = scicalc.Degrees
			continue
		case ":rad", ":radians":
			s.mode = scicalc.Radians
			continue
		case ":mode":
			fmt.Fprintln(a.out, s.mode)
			continue
		}
		if err := a.evalLine(line, s); err != nil && !a.interactive {
			failed = true
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if failed {
		return errFailed
	}
	return nil
}

func (a *app) prompt(s settings) {
	if a.interactive {
		fmt.Fprintf(a.out, "%.3s> ", s.mode)
	}
}

// evalLine evaluates one expression and prints the result or the error.
func (a *app) evalLine(expr string, s settings) error {
	canon := scicalc.Normalize(expr)
	if s.echo {
		if p, err := scicalc.ParseString(canon); err == nil {
			fmt.Fprintf(a.out, "%v : ", p)
		}
	}
	r, err := scicalc.Evaluate(canon, s.mode)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}
	fmt.Fprintln(a.out, scicalc.Format(r))
	return nil
}
