package cmd

import "time"

const (
	DEF_OUTPUT    = outputTable
	DEF_TIMEOUT   = time.Second * 30
	DEF_LOG_LEVEL = "warning"
)

const (
	envHost     = "WARPCOOKIE_HOST"
	envProxy    = "WARPCOOKIE_PROXY"
	envDebug    = "WARPCOOKIE_DEBUG"
	envLogLevel = "WARPCOOKIE_LOG_LEVEL"
	envLogFile  = "WARPCOOKIE_LOG_FILE"
)

const DESCRIPTION = `
warpcookie parses legacy comma-joined cookie headers, the form in which
some servers (and some HTTP stacks) fold several Set-Cookie values into
one header, into individual cookies with their domain, path and
attributes resolved.
`

const (
	ParseDescription = `The parse command splits a cookie header into cookies.
Commas inside expires dates are recognised, missing domains
default to --host and missing paths default to "/".

The header is read from the arguments (one Set-Cookie value
per argument), from --file, or from stdin when the argument
is "-".

Example:
        warpcookie parse --host example.com "sid=abc; path=/,lang=en"
        warpcookie parse --host example.com -o json -s -domain,name - < headers.txt

`
	FetchDescription = `The fetch command makes a GET request to the entered url
and parses the Set-Cookie headers of the response. Redirects
are not followed unless --follow is given, since login
endpoints usually set their cookies on the redirect itself.

Example:
        warpcookie fetch https://www.tumblr.com/login
        warpcookie fetch --cookie sid=abc -o netscape https://domain.com/

`
)

const HELP_TEMPL = `Usage: {{if .UsageText}}{{.UsageText}}{{else}}{{.HelpName}} {{if .VisibleFlags}}[global options]{{end}}{{if .Commands}} command [command options]{{end}} {{if .ArgsUsage}}{{.ArgsUsage}}{{else}}[arguments...]{{end}}{{end}}
{{.Description}}{{if .VisibleCommands}}
Commands:{{range .VisibleCategories}}{{if .Name}}

{{.Name}}:{{range .VisibleCommands}}
  {{join .Names ", "}}{{"\t"}}{{.Usage}}{{end}}{{else}}{{range .VisibleCommands}}
{{"\t"}}{{index .Names 0}}{{"\t:\t"}}{{.Usage}}{{end}}{{end}}{{end}}{{end}}{{if .VisibleFlags}}{{end}}

Use "{{.HelpName}} help <command>" for more information about any command.

`

const CMD_HELP_TEMPL = `{{if .Description}}{{.Description}}{{else}}{{.HelpName}} - {{.Usage}}

{{end}}Usage:
        {{.HelpName}} {{if .UsageText}}{{.UsageText}}{{else}}[arguments...]{{end}}{{if .VisibleFlags}}

Supported Flags:{{range .VisibleFlags}}
  {{.}}{{end}}{{end}}

`
