package bundle

import (
	"github.com/joshuapare/plistkit/pkg/types"
)

// Target describes one property list inside a bundle and where its
// version entries live.
type Target struct {
	// Label is used in messages; defaults to File.
	Label string
	// File is relative to the bundle directory.
	File string
	// KeyPath locates the dictionary holding the entries. Empty means root.
	KeyPath []string
	// Names are the entries written by Update.
	Names types.KeyNames
	// Aliases are alternative spellings consulted by Read when a
	// canonical name is absent. Update never writes them.
	Aliases []types.KeyNames
	// ReadOrder, when set, replaces Names followed by Aliases as the
	// spellings Read tries for each entry. The first one present wins.
	ReadOrder []types.KeyNames
}

// DisplayName returns Label, or File when no label is set.
func (t Target) DisplayName() string {
	if t.Label != "" {
		return t.Label
	}
	return t.File
}

// readNames returns the spelling Read tries first and its fallbacks.
func (t Target) readNames() (types.KeyNames, []types.KeyNames) {
	if len(t.ReadOrder) > 0 {
		return t.ReadOrder[0], t.ReadOrder[1:]
	}
	return t.Names, t.Aliases
}

// Standard file names inside an iOS backup.
const (
	InfoFile     = "Info.plist"
	ManifestFile = "Manifest.plist"
)

// DefaultTargets returns the two documents of an iOS backup: Info.plist
// with spaced names at the root, and Manifest.plist with unspaced names
// under Lockdown. Both are read with spaced names first.
func DefaultTargets() []Target {
	return []Target{
		{
			Label:   InfoFile,
			File:    InfoFile,
			Names:   types.InfoKeyNames,
			Aliases: []types.KeyNames{types.LockdownKeyNames},
		},
		{
			Label:     ManifestFile + "/Lockdown",
			File:      ManifestFile,
			KeyPath:   []string{"Lockdown"},
			Names:     types.LockdownKeyNames,
			ReadOrder: []types.KeyNames{types.InfoKeyNames, types.LockdownKeyNames},
		},
	}
}
