package common

import (
	"bytes"
	"errors"
	"flag"
	"strings"
	"testing"

	"github.com/urfave/cli"
)

func newTestContext(buf *bytes.Buffer, args ...string) *cli.Context {
	app := cli.NewApp()
	app.Name = "warpcookie"
	app.HelpName = "warpcookie"
	app.Version = "test"
	app.Writer = buf
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	_ = set.Parse(args)
	ctx := cli.NewContext(app, set, nil)
	ctx.Command = cli.Command{Name: "cmd"}
	return ctx
}

func stubAppHelp(t *testing.T) *bool {
	t.Helper()
	called := false
	orig := showAppHelpAndExit
	showAppHelpAndExit = func(*cli.Context, int) { called = true }
	t.Cleanup(func() { showAppHelpAndExit = orig })
	return &called
}

func stubCmdHelp(t *testing.T, err error) *bool {
	t.Helper()
	called := false
	orig := showCommandHelp
	showCommandHelp = func(*cli.Context, string) error {
		called = true
		return err
	}
	t.Cleanup(func() { showCommandHelp = orig })
	return &called
}

func TestBeaut(t *testing.T) {
	tests := []struct {
		s    string
		n    int
		want string
	}{
		{"hi", 4, " hi "},
		{"hi", 5, " hi  "},
		{"hello", 3, "hello"},
		{"", 2, "  "},
	}
	for _, tt := range tests {
		if got := Beaut(tt.s, tt.n); got != tt.want {
			t.Errorf("Beaut(%q, %d) = %q, want %q", tt.s, tt.n, got, tt.want)
		}
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		s    string
		n    int
		want string
	}{
		{"sessionId", 5, "se..."},
		{"abcdef", 3, "abc"},
		{"ab", 4, " ab "},
		{"日本語の名前", 8, "日本..."},
		{"日本", 6, " 日本 "},
	}
	for _, tt := range tests {
		if got := Fit(tt.s, tt.n); got != tt.want {
			t.Errorf("Fit(%q, %d) = %q, want %q", tt.s, tt.n, got, tt.want)
		}
	}
}

func TestReplic(t *testing.T) {
	vals := replic('x', 3)
	if len(vals) != 3 || vals[0] != 'x' {
		t.Fatalf("unexpected replic output: %v", vals)
	}
}

func TestRuntimeErr(t *testing.T) {
	if RuntimeErr("parse", "read", nil) != nil {
		t.Fatal("expected nil for nil error")
	}
	base := errors.New("boom")
	err := RuntimeErr("parse", "read", base)
	if err.Error() != "parse[read]: boom" {
		t.Errorf("unexpected message: %q", err.Error())
	}
	if !errors.Is(err, base) {
		t.Error("expected wrapped error")
	}
}

func TestGetVersion(t *testing.T) {
	buf := &bytes.Buffer{}
	VersionCmdStr = "warpcookie 1.0.0"
	defer func() { VersionCmdStr = "" }()
	if err := GetVersion(newTestContext(buf)); err != nil {
		t.Fatalf("GetVersion: %v", err)
	}
	if !strings.Contains(buf.String(), "warpcookie 1.0.0") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestPrintErrWithHelp(t *testing.T) {
	buf := &bytes.Buffer{}
	called := stubAppHelp(t)
	if err := PrintErrWithHelp(newTestContext(buf), errors.New("oops")); err != nil {
		t.Fatalf("PrintErrWithHelp: %v", err)
	}
	if !*called {
		t.Fatal("expected help to be called")
	}
	if !strings.Contains(buf.String(), "warpcookie: oops") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestPrintErrWithHelp_NilError(t *testing.T) {
	called := stubAppHelp(t)
	if err := PrintErrWithHelp(newTestContext(&bytes.Buffer{}), nil); err != nil {
		t.Fatalf("PrintErrWithHelp: %v", err)
	}
	if *called {
		t.Fatal("help should not be shown for a nil error")
	}
}

func TestPrintErrWithHelp_HelpRequested(t *testing.T) {
	called := stubAppHelp(t)
	if err := PrintErrWithHelp(newTestContext(&bytes.Buffer{}), errors.New("flag: help requested")); err != nil {
		t.Fatalf("PrintErrWithHelp: %v", err)
	}
	if !*called {
		t.Fatal("expected help to be called")
	}
}

func TestPrintErrWithCmdHelp(t *testing.T) {
	called := stubCmdHelp(t, nil)
	if err := PrintErrWithCmdHelp(newTestContext(&bytes.Buffer{}), errors.New("oops")); err != nil {
		t.Fatalf("PrintErrWithCmdHelp: %v", err)
	}
	if !*called {
		t.Fatal("expected command help to be called")
	}
}

func TestPrintErrWithCmdHelp_ShowCommandHelpError(t *testing.T) {
	buf := &bytes.Buffer{}
	stubCmdHelp(t, errors.New("boom"))
	if err := PrintErrWithCmdHelp(newTestContext(buf), errors.New("oops")); err != nil {
		t.Fatalf("PrintErrWithCmdHelp: %v", err)
	}
	if !strings.Contains(buf.String(), "boom") {
		t.Errorf("expected help error in output, got %q", buf.String())
	}
}

func TestUsageErrorCallback(t *testing.T) {
	cmdCalled := stubCmdHelp(t, nil)
	appCalled := stubAppHelp(t)

	ctx := newTestContext(&bytes.Buffer{})
	if err := UsageErrorCallback(ctx, errors.New("oops"), false); err != nil {
		t.Fatalf("UsageErrorCallback: %v", err)
	}
	if !*cmdCalled || *appCalled {
		t.Fatalf("expected command help only: cmd=%v app=%v", *cmdCalled, *appCalled)
	}

	ctx.Command = cli.Command{}
	if err := UsageErrorCallback(ctx, errors.New("oops"), false); err != nil {
		t.Fatalf("UsageErrorCallback: %v", err)
	}
	if !*appCalled {
		t.Fatal("expected app help for app-level usage errors")
	}
}

func TestHelp(t *testing.T) {
	buf := &bytes.Buffer{}
	called := stubAppHelp(t)
	if err := Help(newTestContext(buf)); err != nil {
		t.Fatalf("Help: %v", err)
	}
	if !*called {
		t.Fatal("expected help to be called")
	}
	if !strings.Contains(buf.String(), "warpcookie test") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestHelpWithCommandArg(t *testing.T) {
	called := stubCmdHelp(t, nil)
	if err := Help(newTestContext(&bytes.Buffer{}, "parse")); err != nil {
		t.Fatalf("Help: %v", err)
	}
	if !*called {
		t.Fatal("expected command help to be called")
	}
}

func TestHelpWithCommandError(t *testing.T) {
	stubCmdHelp(t, errors.New("no such command"))
	appCalled := stubAppHelp(t)
	if err := Help(newTestContext(&bytes.Buffer{}, "nope")); err != nil {
		t.Fatalf("Help: %v", err)
	}
	if !*appCalled {
		t.Fatal("expected app help after command help error")
	}
}
