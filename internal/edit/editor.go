// Package edit applies version changes to an in-memory property list.
//
// Nothing in this package touches the filesystem. Callers load a
// document, run Apply, and persist the result only when Result.Changed
// reports a difference; that is what makes repeated updates idempotent.
package edit

import (
	"github.com/joshuapare/plistkit/pkg/types"
)

// Result records which of the two leaf values were overwritten.
type Result struct {
	ProductChanged bool
	BuildChanged   bool
}

// Changed reports whether at least one value was overwritten.
func (r Result) Changed() bool { return r.ProductChanged || r.BuildChanged }

// Versions holds the product and build values read from a dictionary.
// Has* is false when the entry is absent.
type Versions struct {
	Product    string
	Build      string
	HasProduct bool
	HasBuild   bool
}

// SetIfChanged stores value under key unless the dictionary already holds
// exactly that string. Absent entries and entries of any other kind count
// as different.
func SetIfChanged(d *types.Dict, key, value string) bool {
	if cur, ok := d.Get(key); ok {
		if s, isStr := cur.AsString(); isStr && s == value {
			return false
		}
	}
	d.Set(key, types.String(value))
	return true
}

// Apply sets the product and build entries of the dictionary at keyPath,
// creating missing intermediate dictionaries on the way.
func Apply(root *types.Dict, keyPath []string, names types.KeyNames, product, build string) (Result, error) {
	target, err := EnsurePath(root, keyPath)
	if err != nil {
		return Result{}, err
	}
	return Result{
		ProductChanged: SetIfChanged(target, names.Product, product),
		BuildChanged:   SetIfChanged(target, names.Build, build),
	}, nil
}

// Read returns the product and build entries of the dictionary at
// keyPath. When a canonical name is absent the aliases are tried in
// order. Read never modifies root; a missing or non-dictionary path just
// yields empty Versions.
func Read(root *types.Dict, keyPath []string, names types.KeyNames, aliases ...types.KeyNames) Versions {
	var out Versions
	node, ok := LookupPath(root, keyPath)
	if !ok {
		return out
	}
	out.Product, out.HasProduct = lookupString(node, names.Product)
	out.Build, out.HasBuild = lookupString(node, names.Build)
	for _, alias := range aliases {
		if !out.HasProduct {
			out.Product, out.HasProduct = lookupString(node, alias.Product)
		}
		if !out.HasBuild {
			out.Build, out.HasBuild = lookupString(node, alias.Build)
		}
	}
	return out
}

func lookupString(d *types.Dict, key string) (string, bool) {
	if key == "" {
		return "", false
	}
	v, ok := d.Get(key)
	if !ok {
		return "", false
	}
	return v.String(), true
}
