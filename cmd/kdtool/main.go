// SPDX-License-Identifier: MIT
// Package: lvkd/cmd/kdtool
//
// main.go — kdtool entry point: CLI app, global flags and slog setup.

package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/carlmjohnson/versioninfo"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args, os.Stdout); err != nil {
		slog.Error("exiting", "err", err)
		os.Exit(-1)
	}
}

func run(args []string, out io.Writer) error {

	app := cli.App{
		Name:    "kdtool",
		Usage:   "generate, load and query k-dimensional point sets",
		Version: versioninfo.Short(),
		Writer:  out,
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log verbosity level (eg: warn, info, debug)",
			Value:   "warn",
			EnvVars: []string{"KDTOOL_LOG_LEVEL", "GO_LOG_LEVEL", "LOG_LEVEL"},
		},
	}
	app.Before = func(cctx *cli.Context) error {
		configLogger(cctx, cctx.App.ErrWriter)
		return nil
	}

	app.Commands = []*cli.Command{
		cmdGen,
		cmdStats,
		cmdFind,
		cmdMin,
		cmdMax,
		cmdNearest,
		cmdRange,
		cmdErase,
		cmdPrint,
	}
	return app.Run(args)
}

func configLogger(cctx *cli.Context, writer io.Writer) *slog.Logger {
	if writer == nil {
		writer = os.Stderr
	}
	var level slog.Level
	switch strings.ToLower(cctx.String("log-level")) {
	case "error":
		level = slog.LevelError
	case "warn":
		level = slog.LevelWarn
	case "info":
		level = slog.LevelInfo
	case "debug":
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}
