package plist

import (
	"io"
	"os"

	"github.com/joshuapare/plistkit/internal/codec"
	"github.com/joshuapare/plistkit/internal/edit"
	"github.com/joshuapare/plistkit/internal/format"
	"github.com/joshuapare/plistkit/internal/writer"
	"github.com/joshuapare/plistkit/pkg/types"
)

// Format is the on-disk encoding of a property list.
type Format = format.Format

// Encodings.
const (
	Binary = format.Binary
	Text   = format.Text
)

// KeyNames names the product and build entries (re-exported for convenience).
type KeyNames = types.KeyNames

// Versions holds values read by ReadValues.
type Versions = edit.Versions

var (
	// InfoKeyNames are "Product Version" and "Build Version".
	InfoKeyNames = types.InfoKeyNames
	// LockdownKeyNames are "ProductVersion" and "BuildVersion".
	LockdownKeyNames = types.LockdownKeyNames
)

// Document is a property list loaded into memory together with the
// encoding it was read in.
type Document struct {
	Path   string
	Format Format
	Root   *types.Dict
}

// DetectFormat classifies the file at path by its signature.
func DetectFormat(path string) (Format, error) {
	return format.Detect(path)
}

// LoadDocument reads and parses the file at path.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, types.IOError("read property list", path, err)
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, withPath(err, path)
	}
	doc.Path = path
	return doc, nil
}

// ParseDocument parses an in-memory property list. The returned
// Document has no Path.
func ParseDocument(data []byte) (*Document, error) {
	root, err := codec.Decode(data)
	if err != nil {
		return nil, err
	}
	return &Document{Format: format.DetectBytes(data), Root: root}, nil
}

// ReadValues returns the product and build entries of the dictionary at
// keyPath. Aliases are consulted when a canonical name is absent. The
// document is never modified.
func ReadValues(doc *Document, keyPath []string, names KeyNames, aliases ...KeyNames) Versions {
	if doc == nil || doc.Root == nil {
		return Versions{}
	}
	return edit.Read(doc.Root, keyPath, names, aliases...)
}

// Marshal serializes the document in its own format.
func (d *Document) Marshal() ([]byte, error) {
	var mw writer.MemWriter
	if err := d.writeTo(&mw); err != nil {
		return nil, err
	}
	return mw.Buf, nil
}

// WriteDocument atomically replaces doc.Path with the serialized
// document, in the format it was loaded in.
func WriteDocument(doc *Document) error {
	if doc.Path == "" {
		return &types.Error{Kind: types.ErrKindIO, Msg: "document has no path"}
	}
	return doc.writeTo(&writer.FileWriter{Path: doc.Path})
}

func (d *Document) writeTo(sink writer.Sink) error {
	return sink.WriteDocument(func(w io.Writer) error {
		return codec.Encode(w, d.Root, d.Format)
	})
}
