package main

import (
	"fmt"
	"log"
	"os"
)

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}
	subCommand := args[0]
	args = args[1:]
	switch subCommand {
	case "convert":
		runConvert(args)
	case "zone":
		runZone(args)
	case "add":
		runAdd(args)
	case "diff":
		runDiff(args)
	case "trim":
		runTrim(args)
	default:
		fmt.Fprintf(os.Stderr, "invalid sub-command %q\n", subCommand)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: kalends <convert|zone|add|diff|trim> [flags]")
}

func fatal(err error) {
	log.New(os.Stderr, "kalends: ", 0).Fatal(err)
}
