package main

import (
	"github.com/spf13/cobra"
)

var showProfile string

func init() {
	cmd := newShowCmd()
	cmd.Flags().StringVar(&showProfile, "profile", "", "YAML profile describing the bundle's property lists")
	rootCmd.AddCommand(cmd)
}

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <bundle>",
		Short: "Show the current product and build versions",
		Long: `The show command prints the current Product/Build Version of every
property list in the bundle without modifying anything.

Example:
  plistctl show ~/Backups/Backup.mobiletransfer
  plistctl show Backup.mobiletransfer --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(args)
		},
	}
	return cmd
}

func runShow(args []string) error {
	b, err := openBundle(args[0], showProfile)
	if err != nil {
		return err
	}

	statuses, err := b.Read()
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(toStatusJSON(statuses))
	}

	printInfo("%s\n", header("Current values:"))
	printStatuses(statuses)
	return nil
}
