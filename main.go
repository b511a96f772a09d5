package main

import (
	"fmt"
	"io"
	"os"

	"github.com/warpdl/warpcookie/cmd"
)

var (
	version   string
	commit    string
	date      string
	buildType string = "unclassified"
)

var (
	osExit           = os.Exit
	stderr io.Writer = os.Stderr
)

func main() {
	osExit(runMain(os.Args, func(args []string) error {
		return cmd.Execute(args, cmd.BuildArgs{
			Version:   version,
			Commit:    commit,
			Date:      date,
			BuildType: buildType,
		})
	}))
}

func runMain(args []string, exec func([]string) error) int {
	if err := exec(args); err != nil {
		fmt.Fprintf(stderr, "warpcookie: %s\n", err.Error())
		return 1
	}
	return 0
}
