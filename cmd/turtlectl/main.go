// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package main implements turtlectl, the turtle fleet controller.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/maloquacious/semver"
	"github.com/spf13/cobra"
)

var version = semver.Version{
	Major: 0,
	Minor: 1,
	Patch: 0,
	Build: semver.Commit(),
}

func main() {
	for _, arg := range os.Args {
		if arg == "-version" || arg == "--version" {
			fmt.Printf("%s\n", version.Short())
			return
		}
	}
	log.SetFlags(log.Lshortfile | log.Ltime)

	if err := Execute(); err != nil {
		log.Fatal(err)
	}
}

// Execute wires every subcommand onto the root and runs it.
func Execute() error {
	cmdRoot.AddCommand(cmdServe)
	cmdRoot.AddCommand(cmdVersion)
	return cmdRoot.Execute()
}

var cmdRoot = &cobra.Command{
	Use:   "turtlectl",
	Short: "Root command for the turtle fleet controller",
	Long:  `Serve the long-poll HTTP rendezvous and drive a fleet of turtles through build or dig plans.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}
