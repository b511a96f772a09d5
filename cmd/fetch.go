package cmd

import (
	"context"
	"errors"

	"github.com/urfave/cli"
	"github.com/warpdl/warpcookie/cmd/common"
	"github.com/warpdl/warpcookie/pkg/fetch"
)

var errMissingURL = errors.New("missing url")

var fetchFlags = []cli.Flag{
	cli.StringFlag{
		Name:   "proxy, x",
		Usage:  "proxy url (http, https or socks5)",
		EnvVar: envProxy,
	},
	cli.DurationFlag{
		Name:  "timeout, t",
		Usage: "request timeout",
		Value: DEF_TIMEOUT,
	},
	cli.BoolFlag{
		Name:  "follow, L",
		Usage: "follow redirects (cookies set on redirects are then lost)",
	},
	cli.StringFlag{
		Name:  "user-agent, u",
		Usage: "user agent: chrome, firefox, warp or a custom string",
		Value: "warp",
	},
	cli.StringSliceFlag{
		Name:  "header, e",
		Usage: "extra request header 'Key: Value' (repeatable)",
	},
	cli.StringSliceFlag{
		Name:  "cookie, c",
		Usage: "request cookie 'name=value' (repeatable)",
	},
	outputFlag,
	sortFlag,
	verboseFlag,
	logLevelFlag,
	logFileFlag,
}

func fetchCookies(ctx *cli.Context) error {
	url := ctx.Args().First()
	if url == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	if url == "" {
		return common.PrintErrWithCmdHelp(ctx, errMissingURL)
	}
	l, err := newLogger(ctx)
	if err != nil {
		return common.RuntimeErr("fetch", "log", err)
	}
	defer l.Close()
	headers, err := requestHeaders(ctx.StringSlice("header"), ctx.StringSlice("cookie"))
	if err != nil {
		return common.RuntimeErr("fetch", "flags", err)
	}
	if headers.Get("User-Agent") == "" {
		headers.Set("User-Agent", fetch.UserAgent(ctx.String("user-agent")))
	}
	client, err := fetch.NewClient(&fetch.ClientOpts{
		ProxyURL:        ctx.String("proxy"),
		Timeout:         ctx.Duration("timeout"),
		FollowRedirects: ctx.Bool("follow"),
	})
	if err != nil {
		return common.RuntimeErr("fetch", "client", err)
	}
	res, err := fetch.SetCookieHeader(context.Background(), client, url, headers)
	if err != nil {
		return common.RuntimeErr("fetch", "request", err)
	}
	l.Info("%s responded with status %d", res.Host, res.Status)
	return parseAndRender(ctx, l, "fetch", res.Header, res.Host)
}
