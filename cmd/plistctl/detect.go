package main

import (
	"github.com/joshuapare/plistkit/pkg/plist"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newDetectCmd())
}

func newDetectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect <file>...",
		Short: "Report the encoding of property list files",
		Long: `The detect command reports whether each file is a binary (bplist00)
or XML property list. Only the file signature is inspected.

Example:
  plistctl detect Backup.mobiletransfer/Info.plist
  plistctl detect Backup.mobiletransfer/*.plist --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(args)
		},
	}
	return cmd
}

func runDetect(args []string) error {
	formats := make(map[string]string, len(args))
	for _, path := range args {
		f, err := plist.DetectFormat(path)
		if err != nil {
			return err
		}
		formats[path] = f.String()
		if !jsonOut {
			printInfo("%s: %s\n", path, f)
		}
	}
	if jsonOut {
		return printJSON(formats)
	}
	return nil
}
