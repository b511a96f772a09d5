package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli"
	"github.com/warpdl/warpcookie/cmd/common"
	"github.com/warpdl/warpcookie/internal/cookies"
	"github.com/warpdl/warpcookie/pkg/fetch"
	"github.com/warpdl/warpcookie/pkg/logger"
)

var errMissingHost = errors.New("missing --host (used as the domain of cookies without one)")

var (
	outputFlag = cli.StringFlag{
		Name:  "output, o",
		Usage: "output format: table, json, netscape or header",
		Value: DEF_OUTPUT,
	}
	sortFlag = cli.StringFlag{
		Name:  "sort, s",
		Usage: "comma-separated sort keys (name, domain, path, expires), prefix '-' for descending",
	}
	verboseFlag = cli.BoolFlag{
		Name:   "verbose, V",
		Usage:  "log parser diagnostics to stderr (same as --log-level debug)",
		EnvVar: envDebug,
	}
	logLevelFlag = cli.StringFlag{
		Name:   "log-level",
		Usage:  "minimum log level: debug, info, warning or error",
		Value:  DEF_LOG_LEVEL,
		EnvVar: envLogLevel,
	}
	logFileFlag = cli.StringFlag{
		Name:   "log-file",
		Usage:  "also append logs to this file",
		EnvVar: envLogFile,
	}

	parseFlags = []cli.Flag{
		cli.StringFlag{
			Name:   "host, H",
			Usage:  "default host used as the domain of cookies without one",
			EnvVar: envHost,
		},
		cli.StringFlag{
			Name:  "file, f",
			Usage: "read Set-Cookie values from this file, one per line",
		},
		outputFlag,
		sortFlag,
		verboseFlag,
		logLevelFlag,
		logFileFlag,
	}
)

// newLogger builds the stderr logger and, with --log-file, tees it into
// the file. The caller closes the result.
func newLogger(ctx *cli.Context) (logger.Logger, error) {
	min, err := logger.ParseLevel(ctx.String("log-level"))
	if err != nil {
		return nil, err
	}
	if ctx.Bool("verbose") {
		min = logger.LevelDebug
	}
	l := logger.NewLeveledLogger(log.New(ctx.App.ErrWriter, "warpcookie: ", 0), min)
	path := ctx.String("log-file")
	if path == "" {
		return l, nil
	}
	f, err := appFs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("error: cannot open log file: %w", err)
	}
	return logger.NewMultiLogger(l, logger.NewFileLogger(f, min)), nil
}

func parse(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	if ctx.String("host") == "" {
		return common.RuntimeErr("parse", "host", errMissingHost)
	}
	host, err := fetch.NormalizeHost(ctx.String("host"))
	if err != nil {
		return common.RuntimeErr("parse", "host", err)
	}
	header, err := readHeader(ctx)
	if err != nil {
		return common.RuntimeErr("parse", "read", err)
	}
	l, err := newLogger(ctx)
	if err != nil {
		return common.RuntimeErr("parse", "log", err)
	}
	defer l.Close()
	return parseAndRender(ctx, l, "parse", header, host)
}

// parseAndRender is shared by parse and fetch.
func parseAndRender(ctx *cli.Context, l logger.Logger, cmd, header, host string) error {
	list, err := cookies.NewParser(l).Parse(header, host)
	if err != nil {
		return common.RuntimeErr(cmd, "parse", err)
	}
	l.Info("parsed %d cookies for %s", len(list), host)

	list, err = sortCookies(list, ctx.String("sort"))
	if err != nil {
		return common.RuntimeErr(cmd, "sort", err)
	}
	if err := render(ctx.App.Writer, ctx.String("output"), list); err != nil {
		return common.RuntimeErr(cmd, "output", err)
	}
	return nil
}
