package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joshuapare/plistkit/pkg/plist"
	"github.com/spf13/cobra"
)

var (
	diffVersion string
	diffBuild   string
	diffKeyPath string
	diffNames   string
)

func init() {
	cmd := newDiffCmd()
	cmd.Flags().StringVar(&diffVersion, "version", "", "Target Product Version")
	cmd.Flags().StringVar(&diffBuild, "build", "", "Target Build Version")
	cmd.Flags().StringVar(&diffKeyPath, "key-path", "", "Slash-separated dictionary path (e.g., Lockdown)")
	cmd.Flags().StringVar(&diffNames, "names", "info", `Key names: "info", "lockdown", or "<product>,<build>"`)
	_ = cmd.MarkFlagRequired("version")
	_ = cmd.MarkFlagRequired("build")
	rootCmd.AddCommand(cmd)
}

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <file>",
		Short: "Preview a version change to a single property list",
		Long: `The diff command prints a unified diff (as XML) of the change an update
would make to one file. Nothing is written.

Example:
  plistctl diff Info.plist --version 17.0 --build 21A123
  plistctl diff Manifest.plist --key-path Lockdown --names lockdown --version 17.0 --build 21A123`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(args)
		},
	}
	return cmd
}

func runDiff(args []string) error {
	names, err := parseKeyNames(diffNames)
	if err != nil {
		return err
	}
	changed, err := plist.Update(args[0], splitKeyPath(diffKeyPath), names,
		normalizeInput(diffVersion), normalizeInput(diffBuild),
		&plist.UpdateOptions{DryRun: true, DiffOut: os.Stdout, Logger: logger})
	if err != nil {
		return err
	}
	if !changed {
		printInfo("%s already has target versions. No change.\n", args[0])
	}
	return nil
}

func parseKeyNames(s string) (plist.KeyNames, error) {
	switch strings.ToLower(s) {
	case "info":
		return plist.InfoKeyNames, nil
	case "lockdown":
		return plist.LockdownKeyNames, nil
	}
	product, build, ok := strings.Cut(s, ",")
	if !ok || product == "" || build == "" {
		return plist.KeyNames{}, fmt.Errorf("invalid --names %q: want info, lockdown or <product>,<build>", s)
	}
	return plist.KeyNames{Product: product, Build: build}, nil
}

func splitKeyPath(s string) []string {
	s = strings.Trim(s, "/")
	if s == "" {
		return nil
	}
	return strings.Split(s, "/")
}
