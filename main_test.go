package main

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/warpdl/warpcookie/cmd"
)

func captureStderr(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	orig := stderr
	stderr = buf
	t.Cleanup(func() { stderr = orig })
	return buf
}

func TestMainVersion(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"warpcookie", "version"}
	defer func() { os.Args = oldArgs }()
	oldExit := osExit
	osExit = func(code int) {
		if code != 0 {
			t.Fatalf("unexpected exit code: %d", code)
		}
	}
	defer func() { osExit = oldExit }()
	main()
}

func TestRunMain(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
	}{
		{name: "success", wantCode: 0},
		{name: "error", err: errors.New("boom"), wantCode: 1, wantErr: "warpcookie: boom\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureStderr(t)
			code := runMain([]string{"warpcookie"}, func([]string) error { return tt.err })
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			if buf.String() != tt.wantErr {
				t.Errorf("stderr = %q, want %q", buf.String(), tt.wantErr)
			}
		})
	}
}

func TestRunMainReportsCommandErrors(t *testing.T) {
	t.Setenv("WARPCOOKIE_HOST", "")
	buf := captureStderr(t)
	code := runMain([]string{"warpcookie", "parse", "a=1"}, func(args []string) error {
		return cmd.Execute(args, cmd.BuildArgs{Version: "test"})
	})
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.HasPrefix(buf.String(), "warpcookie: parse[host]: missing --host") {
		t.Errorf("unexpected stderr %q", buf.String())
	}
}
