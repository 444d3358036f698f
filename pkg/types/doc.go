// Package types defines the value model and error categories shared by
// the plistkit packages.
//
// A property list is held as a tree of Value nodes. Value is a tagged
// variant (string, integer, real, boolean, date, data, dict, array, uid);
// dictionaries are *Dict so that a nested dictionary located by a key path
// can be edited in place.
//
// Design goals:
//   - Exhaustive switches over Kind instead of type assertions on any.
//   - Lossless round trips: integers remember signedness, data is kept verbatim.
//   - Typed errors with stable categories (not found/parse/structure/io).
//
// This package has no dependencies beyond the standard library.
package types
