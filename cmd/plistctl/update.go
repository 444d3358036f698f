package main

import (
	"errors"
	"os"

	"github.com/joshuapare/plistkit/pkg/bundle"
	"github.com/joshuapare/plistkit/pkg/plist"
	"github.com/spf13/cobra"
)

var (
	updateVersion string
	updateBuild   string
	updateBackup  bool
	updateYes     bool
	updateDryRun  bool
	updateProfile string
)

func init() {
	cmd := newUpdateCmd()
	cmd.Flags().StringVar(&updateVersion, "version", "", "Target Product Version (e.g., 17.0)")
	cmd.Flags().StringVar(&updateBuild, "build", "", "Target Build Version (e.g., 21A123)")
	cmd.Flags().BoolVar(&updateBackup, "backup", false, "Create .bak files before writing")
	cmd.Flags().BoolVarP(&updateYes, "yes", "y", false, "Do not ask for confirmation")
	cmd.Flags().BoolVar(&updateDryRun, "dry-run", false, "Show what would change without writing")
	cmd.Flags().StringVar(&updateProfile, "profile", "", "YAML profile describing the bundle's property lists")
	rootCmd.AddCommand(cmd)
}

func newUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <bundle>",
		Short: "Update the product and build versions",
		Long: `The update command rewrites Product/Build Version in Info.plist and
Manifest.plist (under Lockdown). Current values are shown first and
confirmation is requested unless --yes is given. Missing --version or
--build values are prompted for.

Example:
  plistctl update Backup.mobiletransfer --version 17.0 --build 21A123
  plistctl update Backup.mobiletransfer --backup
  plistctl update Backup.mobiletransfer --version 17.0 --build 21A123 --dry-run -y`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(args)
		},
	}
	return cmd
}

// updateJSON is the --json shape of an update run.
type updateJSON struct {
	Product string             `json:"product"`
	Build   string             `json:"build"`
	DryRun  bool               `json:"dry_run"`
	Results []updateResultJSON `json:"results"`
}

type updateResultJSON struct {
	Target  string `json:"target"`
	Path    string `json:"path"`
	Changed bool   `json:"changed"`
}

func runUpdate(args []string) error {
	b, err := openBundle(args[0], updateProfile)
	if err != nil {
		return err
	}

	statuses, err := b.Read()
	if err != nil {
		return err
	}
	if !jsonOut {
		printInfo("%s\n", header("Current values:"))
		printStatuses(statuses)
	}

	if !updateYes {
		ok, err := confirm("Overwrite with new version? (Y/N): ")
		if err != nil {
			return err
		}
		if !ok {
			printInfo("Cancelled. No changes made.\n")
			return nil
		}
	}

	product, err := promptValue(updateVersion, "Enter Product Version (e.g., 17.0): ")
	if err != nil {
		return err
	}
	if product == "" {
		return errors.New("no Product Version provided. Use --version or interactive prompt")
	}
	build, err := promptValue(updateBuild, "Enter Build Version (e.g., 21A123): ")
	if err != nil {
		return err
	}
	if build == "" {
		return errors.New("no Build Version provided. Use --build or interactive prompt")
	}

	opts := &plist.UpdateOptions{
		CreateBackup: updateBackup,
		DryRun:       updateDryRun,
		Logger:       logger,
	}
	if updateDryRun && !jsonOut && !quiet {
		opts.DiffOut = os.Stdout
	}

	results, err := b.Update(product, build, opts)
	if jsonOut {
		out := updateJSON{Product: product, Build: build, DryRun: updateDryRun, Results: []updateResultJSON{}}
		for _, r := range results {
			out.Results = append(out.Results, updateResultJSON{
				Target:  r.Target.DisplayName(),
				Path:    r.Path,
				Changed: r.Changed,
			})
		}
		if err != nil {
			return err
		}
		return printJSON(out)
	}
	printResults(results, product, build)
	if err != nil {
		return err
	}

	switch {
	case !bundle.AnyChanged(results):
		printInfo("No changes: all property lists already contained target versions.\n")
	case updateDryRun:
		printInfo("Dry run: no files were written.\n")
	default:
		printInfo("Done: property lists updated as requested.\n")
	}
	return nil
}

func printResults(results []bundle.Result, product, build string) {
	verb := "Updated"
	if updateDryRun {
		verb = "Would update"
	}
	for _, r := range results {
		if r.Changed {
			printInfo("%s %s %s: %s -> %s, %s -> %s\n", markChanged(), verb, r.Target.DisplayName(),
				r.Target.Names.Product, product, r.Target.Names.Build, build)
			if updateBackup && !updateDryRun {
				printVerbose("Backup: %s.bak\n", r.Path)
			}
			continue
		}
		printInfo("%s %s already has target versions. No change.\n", markSkipped(), r.Target.DisplayName())
	}
}
