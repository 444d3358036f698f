package format

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/plistkit/pkg/types"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestDetect_Binary(t *testing.T) {
	path := writeFile(t, "Info.plist", append([]byte("bplist00"), 0xd1, 0x01, 0x02))

	f, err := Detect(path)
	require.NoError(t, err)
	assert.Equal(t, Binary, f)
}

func TestDetect_XML(t *testing.T) {
	path := writeFile(t, "Info.plist", []byte(`<?xml version="1.0" encoding="UTF-8"?>`+"\n<plist/>"))

	f, err := Detect(path)
	require.NoError(t, err)
	assert.Equal(t, Text, f)
}

func TestDetect_ShortFileIsText(t *testing.T) {
	path := writeFile(t, "short.plist", []byte("bplist"))

	f, err := Detect(path)
	require.NoError(t, err)
	assert.Equal(t, Text, f)
}

func TestDetect_EmptyFileIsText(t *testing.T) {
	path := writeFile(t, "empty.plist", nil)

	f, err := Detect(path)
	require.NoError(t, err)
	assert.Equal(t, Text, f)
}

func TestDetect_OtherVersionIsText(t *testing.T) {
	// Only the exact bplist00 signature counts as binary.
	path := writeFile(t, "v1.plist", []byte("bplist15rest"))

	f, err := Detect(path)
	require.NoError(t, err)
	assert.Equal(t, Text, f)
}

func TestDetect_Missing(t *testing.T) {
	_, err := Detect(filepath.Join(t.TempDir(), "nope.plist"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrNotFound))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestFormat_String(t *testing.T) {
	assert.Equal(t, "binary", Binary.String())
	assert.Equal(t, "xml", Text.String())
}
