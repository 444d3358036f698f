package format

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/joshuapare/plistkit/pkg/types"
)

// Detect classifies the file at path by its first SignatureSize bytes.
// A missing file yields an error of kind types.ErrKindNotFound.
func Detect(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return Text, types.IOError("open property list", path, err)
	}
	defer f.Close()

	header := make([]byte, SignatureSize)
	n, err := io.ReadFull(f, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return Text, types.IOError("read signature", path, err)
	}
	return DetectBytes(header[:n]), nil
}

// DetectBytes classifies an in-memory property list.
func DetectBytes(data []byte) Format {
	if len(data) >= SignatureSize && bytes.Equal(data[:SignatureSize], BinarySignature) {
		return Binary
	}
	return Text
}
