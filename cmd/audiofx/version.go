package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var version string
var commitHash string

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of audiofx",
	Run: func(cmd *cobra.Command, args []string) {
		printVersion()
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func printVersion() {
	if version == "" {
		version = "dev"
	}
	fmt.Printf("audiofx %s, %s/%s, commit %s\n", version, runtime.GOOS, runtime.GOARCH, commitHash)
}
