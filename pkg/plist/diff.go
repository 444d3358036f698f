package plist

import (
	"github.com/pmezard/go-difflib/difflib"

	"github.com/joshuapare/plistkit/internal/codec"
	"github.com/joshuapare/plistkit/internal/format"
)

// DiffContext is the number of unchanged lines shown around each change.
const DiffContext = 3

// Diff returns a unified diff between two documents. Both sides are
// rendered as XML regardless of their on-disk encoding so binary property
// lists can be reviewed too. Identical documents yield "".
func Diff(before, after *Document) (string, error) {
	a, err := codec.Marshal(before.Root, format.Text)
	if err != nil {
		return "", err
	}
	b, err := codec.Marshal(after.Root, format.Text)
	if err != nil {
		return "", err
	}
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(a)),
		B:        difflib.SplitLines(string(b)),
		FromFile: label(before, "before"),
		ToFile:   label(after, "after"),
		Context:  DiffContext,
	})
}

func label(d *Document, fallback string) string {
	if d.Path == "" {
		return fallback
	}
	return d.Path + " (" + fallback + ")"
}
