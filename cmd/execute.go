// Package cmd is the top-level driver package: argument parsing and
// orchestration of one lowering run.
package cmd

import (
	"fmt"
	"os"

	"github.com/ComedicChimera/olive"
)

const version = "0.1.0"

// Execute is the entry point for the `abilower` CLI utility.
func Execute() {
	cli := olive.NewCLI("abilower", "abilower lowers public Swift-like declarations to C-ABI thunks", true)

	lowerCmd := cli.AddSubcommand("lower", "lower a fixture module and print its thunks", true)
	lowerCmd.AddPrimaryArg("project-path", "the path to the project directory", true)
	lowerCmd.AddStringArg("fixture", "f", "the name of the built-in fixture module to lower", false)

	cli.AddSubcommand("version", "print the abilower version", false)

	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}

	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "lower":
		execLowerCommand(subResult)
	case "version":
		fmt.Println("abilower version " + version)
	}
}

func execLowerCommand(result *olive.ArgParseResult) {
	rootPath, _ := result.PrimaryArg()

	fixtureName := "counter"
	if fa, ok := result.Arguments["fixture"]; ok {
		fixtureName = fa.(string)
	}

	d := NewDriver(rootPath)
	if !d.LoadProject() {
		os.Exit(1)
	}

	mod, ok := Fixture(fixtureName)
	if !ok {
		fmt.Printf("unknown fixture %q\n", fixtureName)
		os.Exit(1)
	}

	if !d.Run(mod) {
		os.Exit(1)
	}
}
