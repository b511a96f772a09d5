package cmd

import (
	"bytes"
	"io"
	"testing"

	"github.com/spf13/afero"
)

// runApp runs the CLI with args and returns what it wrote to stdout and stderr.
func runApp(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := newApp(BuildArgs{Version: "test", BuildType: "dev"})
	app.Writer = &stdout
	app.ErrWriter = &stderr
	err := app.Run(append([]string{"warpcookie"}, args...))
	return stdout.String(), stderr.String(), err
}

func withFs(t *testing.T, fs afero.Fs) {
	t.Helper()
	orig := appFs
	appFs = fs
	t.Cleanup(func() { appFs = orig })
}

func withStdin(t *testing.T, r io.Reader) {
	t.Helper()
	orig := appStdin
	appStdin = r
	t.Cleanup(func() { appStdin = orig })
}
