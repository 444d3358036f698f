/*
Package plist provides a high-level API for editing the version entries of
property list files while keeping their on-disk encoding.

# Quick Start

Bump the versions in a backup's Info.plist:

	changed, err := plist.Update("Info.plist", nil, plist.InfoKeyNames, "17.0", "21A123", nil)

And in Manifest.plist, where they live under the Lockdown dictionary:

	changed, err := plist.Update("Manifest.plist", []string{"Lockdown"},
	    plist.LockdownKeyNames, "17.0", "21A123", &plist.UpdateOptions{CreateBackup: true})

# Format Preservation

A file that starts with the bplist00 signature is written back as a binary
property list; anything else is written back as XML. The format is decided
once, when the document is loaded, and travels with the Document.

# Idempotence

Update compares before it writes. Running the same update twice writes the
file once and, with CreateBackup, takes the backup once. An existing
<file>.bak is never overwritten.

# Safety

  - Atomic replace: temp file in the same directory, fsync, rename
  - The original file is untouched on every failure path
  - Permission bits carried over where the platform has them
  - A key path running through a non-dictionary value is an error, never an overwrite

# Reading

ReadValues reports the current versions without creating any missing
dictionaries:

	doc, _ := plist.LoadDocument("Manifest.plist")
	v := plist.ReadValues(doc, []string{"Lockdown"}, plist.LockdownKeyNames)
*/
package plist
