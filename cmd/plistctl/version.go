package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set with -ldflags "-X main.version=... -X main.commit=... -X main.date=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// versionLine is the first line of both `plistctl --version` and
// `plistctl version`.
func versionLine() string {
	return "plistctl " + version + "\n"
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version, commit and build date",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprint(out, versionLine())
		fmt.Fprintf(out, "  commit: %s\n", commit)
		fmt.Fprintf(out, "  built: %s\n", date)
	},
}

func init() {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(`plistctl {{.Version}}` + "\n")
	rootCmd.AddCommand(versionCmd)
}
