package main

import (
	"fmt"

	"github.com/joshuapare/plistkit/pkg/bundle"
)

// openBundle opens dir with the targets from profilePath, or the default
// iOS backup targets when profilePath is empty.
func openBundle(dir, profilePath string) (*bundle.Bundle, error) {
	var targets []bundle.Target
	if profilePath != "" {
		printVerbose("Loading profile: %s\n", profilePath)
		t, err := bundle.LoadProfile(profilePath)
		if err != nil {
			return nil, err
		}
		targets = t
	}
	printVerbose("Opening bundle: %s\n", dir)
	b, err := bundle.Open(dir, targets...)
	if err != nil {
		return nil, fmt.Errorf("%w\n\nEnsure the provided path is a backup bundle containing the required property lists", err)
	}
	return b, nil
}

// quoteValue renders a possibly absent value.
func quoteValue(v string, ok bool) string {
	if !ok {
		return "<absent>"
	}
	return fmt.Sprintf("%q", v)
}

// statusJSON is the --json shape of one target's current values.
type statusJSON struct {
	Target  string  `json:"target"`
	Path    string  `json:"path"`
	Format  string  `json:"format"`
	Product *string `json:"product"`
	Build   *string `json:"build"`
}

func toStatusJSON(statuses []bundle.Status) []statusJSON {
	out := make([]statusJSON, 0, len(statuses))
	for _, s := range statuses {
		j := statusJSON{
			Target: s.Target.DisplayName(),
			Path:   s.Path,
			Format: s.Format.String(),
		}
		if s.Versions.HasProduct {
			p := s.Versions.Product
			j.Product = &p
		}
		if s.Versions.HasBuild {
			b := s.Versions.Build
			j.Build = &b
		}
		out = append(out, j)
	}
	return out
}

func printStatuses(statuses []bundle.Status) {
	for _, s := range statuses {
		printInfo("- %s: %s=%s, %s=%s (%s)\n",
			s.Target.DisplayName(),
			s.Target.Names.Product, quoteValue(s.Versions.Product, s.Versions.HasProduct),
			s.Target.Names.Build, quoteValue(s.Versions.Build, s.Versions.HasBuild),
			s.Format)
	}
}
