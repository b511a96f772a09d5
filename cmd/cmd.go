package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/urfave/cli"
	"github.com/warpdl/warpcookie/cmd/common"
)

type BuildArgs struct {
	Version   string
	BuildType string
	Date      string
	Commit    string
}

func newApp(bArgs BuildArgs) *cli.App {
	app := cli.NewApp()
	app.Name = "warpcookie"
	app.HelpName = "warpcookie"
	app.Usage = "A legacy cookie header parser."
	app.Version = fmt.Sprintf("%s-%s", bArgs.Version, bArgs.BuildType)
	app.UsageText = "warpcookie <command> [arguments...]"
	app.Description = DESCRIPTION
	app.CustomAppHelpTemplate = HELP_TEMPL
	app.OnUsageError = common.UsageErrorCallback
	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr
	app.Commands = []cli.Command{
		{
			Name:                   "parse",
			Aliases:                []string{"p"},
			Usage:                  "split a cookie header into cookies",
			CustomHelpTemplate:     CMD_HELP_TEMPL,
			OnUsageError:           common.UsageErrorCallback,
			Description:            ParseDescription,
			Action:                 parse,
			Flags:                  parseFlags,
			UseShortOptionHandling: true,
		},
		{
			Name:                   "fetch",
			Aliases:                []string{"f"},
			Usage:                  "request a url and parse its cookies",
			CustomHelpTemplate:     CMD_HELP_TEMPL,
			OnUsageError:           common.UsageErrorCallback,
			Description:            FetchDescription,
			Action:                 fetchCookies,
			Flags:                  fetchFlags,
			UseShortOptionHandling: true,
		},
		{
			Name:    "help",
			Aliases: []string{"h"},
			Usage:   "prints the help message",
			Action:  common.Help,
		},
		{
			Name:               "version",
			Aliases:            []string{"v"},
			Usage:              "prints installed version of warpcookie",
			UsageText:          " ",
			CustomHelpTemplate: CMD_HELP_TEMPL,
			Action:             common.GetVersion,
		},
	}
	app.Action = common.Help
	app.HideHelp = true
	app.HideVersion = true
	common.VersionCmdStr = fmt.Sprintf("%s %s (%s_%s)\nBuild: %s=%s\n",
		app.Name,
		app.Version,
		runtime.GOOS,
		runtime.GOARCH,
		bArgs.Date, bArgs.Commit,
	)
	return app
}

func Execute(args []string, bArgs BuildArgs) error {
	return newApp(bArgs).Run(args)
}
