package edit

import (
	"fmt"

	"github.com/joshuapare/plistkit/pkg/types"
)

// EnsurePath returns the dictionary at keyPath below root, creating an
// empty dictionary for every missing segment. An existing segment that
// holds anything other than a dictionary is never replaced; the walk stops
// with an error of kind types.ErrKindStructure instead.
func EnsurePath(root *types.Dict, keyPath []string) (*types.Dict, error) {
	node := root
	for i, seg := range keyPath {
		v, ok := node.Get(seg)
		if !ok {
			child := types.NewDict()
			node.Set(seg, types.DictValue(child))
			node = child
			continue
		}
		child, ok := v.AsDict()
		if !ok {
			return nil, &types.Error{
				Kind:    types.ErrKindStructure,
				Msg:     fmt.Sprintf("segment %q holds a %s, not a dictionary; cannot write keys there", seg, v.Kind()),
				KeyPath: append([]string(nil), keyPath[:i+1]...),
			}
		}
		node = child
	}
	return node, nil
}

// LookupPath returns the dictionary at keyPath without modifying root.
// It reports false if any segment is missing or not a dictionary.
func LookupPath(root *types.Dict, keyPath []string) (*types.Dict, bool) {
	node := root
	for _, seg := range keyPath {
		if node == nil {
			return nil, false
		}
		v, ok := node.Get(seg)
		if !ok {
			return nil, false
		}
		if node, ok = v.AsDict(); !ok {
			return nil, false
		}
	}
	return node, node != nil
}
