package main

import (
	"fmt"
	"os"
)

const usageText = `rangeslider is a dual-handle range slider for the terminal.

Usage:
  rangeslider <command> [flags]

Commands:
  ui         run the interactive slider
  config     print configuration (effective or defaults)
  simulate   run a scripted drag gesture without a terminal
  version    print the build version
  help       show help

Flags:
  -h, --help   show help

Examples:
  rangeslider ui --config ~/.rangeslider/config.toml
  rangeslider config --default --format toml
  rangeslider simulate --kind middle --offset 20 --ticks 30
`

func printUsage() {
	fmt.Fprint(os.Stderr, usageText)
}

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		printUsage()
		return
	}

	wiring := defaultCommandWiring(os.Stdout, os.Stderr)
	commands := buildCommands(wiring)

	switch args[0] {
	case "-h", "--help", "help":
		printUsage()
		return
	}

	runner, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args[0])
		printUsage()
		os.Exit(2)
	}
	exitOnErr(args[0], runner.Run(args[1:]), wiring.stderr)
}
