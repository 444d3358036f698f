package plist

import (
	"errors"
	"fmt"
	"os"

	"github.com/joshuapare/plistkit/internal/edit"
	"github.com/joshuapare/plistkit/internal/writer"
	"github.com/joshuapare/plistkit/pkg/types"
)

var backupFile = writer.Backup

// Update sets the product and build entries of the dictionary at keyPath
// in the file at path and reports whether the file changed.
//
// Missing intermediate dictionaries are created. A key path segment that
// holds any other kind of value fails with types.ErrInvalidStructure and
// the file is left as it was. Nothing is written when both entries
// already hold the target strings.
//
// Example:
//
//	changed, err := plist.Update("Manifest.plist", []string{"Lockdown"},
//	    plist.LockdownKeyNames, "17.0", "21A123", nil)
func Update(path string, keyPath []string, names KeyNames, product, build string, opts *UpdateOptions) (bool, error) {
	log := opts.logger().With("path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return false, types.IOError("read property list", path, err)
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return false, withPath(err, path)
	}
	doc.Path = path
	log.Debug("loaded property list", "format", doc.Format, "keys", doc.Root.Len())

	res, err := edit.Apply(doc.Root, keyPath, names, product, build)
	if err != nil {
		return false, withPath(err, path)
	}
	if !res.Changed() {
		log.Debug("already at target versions", "product", product, "build", build)
		return false, nil
	}

	if opts != nil && opts.DiffOut != nil {
		before, err := ParseDocument(data)
		if err != nil {
			return false, withPath(err, path)
		}
		before.Path = path
		d, err := Diff(before, doc)
		if err != nil {
			return false, err
		}
		if _, err := fmt.Fprint(opts.DiffOut, d); err != nil {
			return false, fmt.Errorf("write diff: %w", err)
		}
	}

	if opts != nil && opts.DryRun {
		log.Info("dry run, not writing", "product_changed", res.ProductChanged, "build_changed", res.BuildChanged)
		return true, nil
	}

	if opts != nil && opts.CreateBackup {
		bak, created, err := backupFile(path)
		switch {
		case err != nil && created:
			log.Warn("created backup without original timestamps", "backup", bak, "error", err)
		case err != nil:
			return false, err
		case created:
			log.Info("created backup", "backup", bak)
		default:
			log.Debug("keeping existing backup", "backup", bak)
		}
	}

	if err := WriteDocument(doc); err != nil {
		return false, err
	}
	log.Info("updated property list",
		"format", doc.Format,
		"key_path", types.JoinKeyPath(keyPath),
		"product_changed", res.ProductChanged,
		"build_changed", res.BuildChanged)
	return true, nil
}

// withPath attaches the file path to a typed error that lacks one.
func withPath(err error, path string) error {
	var te *types.Error
	if errors.As(err, &te) && te.Path == "" {
		te.Path = path
	}
	return err
}
