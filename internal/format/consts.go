// Package format classifies property list files by their on-disk encoding.
// Binary property lists carry a fixed eight byte signature; anything else
// is treated as the text (XML) encoding.
package format

import "howett.net/plist"

// BinarySignature is the eight-byte header of every binary property list.
// Layout:
//
//	0x00  'b' 'p' 'l' 'i' 's' 't'   magic
//	0x06  '0' '0'                   version
var BinarySignature = []byte{'b', 'p', 'l', 'i', 's', 't', '0', '0'}

// SignatureSize is the number of leading bytes inspected by Detect.
const SignatureSize = 8

// Format is the on-disk encoding of a property list.
type Format uint8

const (
	// Text is the XML encoding. It is the fallback for anything that does
	// not carry the binary signature.
	Text Format = iota
	// Binary is the bplist00 encoding.
	Binary
)

func (f Format) String() string {
	if f == Binary {
		return "binary"
	}
	return "xml"
}

// PlistFormat returns the encoder constant used to write f.
func (f Format) PlistFormat() int {
	if f == Binary {
		return plist.BinaryFormat
	}
	return plist.XMLFormat
}
