package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/urfave/cli"
	"github.com/warpdl/warpcookie/internal/cookies"
)

var (
	appFs    afero.Fs  = afero.NewOsFs()
	appStdin io.Reader = os.Stdin
)

var errNoHeader = errors.New("no cookie header given (pass it as an argument, with --file, or '-' for stdin)")

// readHeader collects the header text for the parse command. Arguments are
// treated as separate Set-Cookie values; files and stdin as one value per
// line. Either way the result is the legacy comma-joined form.
func readHeader(ctx *cli.Context) (string, error) {
	if path := ctx.String("file"); path != "" {
		f, err := appFs.Open(path)
		if err != nil {
			return "", fmt.Errorf("error: cannot open header file: %w", err)
		}
		defer f.Close()
		return readLines(f)
	}
	args := []string(ctx.Args())
	switch {
	case len(args) == 0:
		return "", errNoHeader
	case len(args) == 1 && args[0] == "-":
		return readLines(appStdin)
	}
	return cookies.JoinSetCookie(args), nil
}

func readLines(r io.Reader) (string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("error: failed to read cookie header: %w", err)
	}
	return cookies.JoinSetCookie(lines), nil
}
