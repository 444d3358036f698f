package types

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_IsMatchesKind(t *testing.T) {
	err := &Error{Kind: ErrKindStructure, Msg: "segment holds a string", Path: "Manifest.plist", KeyPath: []string{"Lockdown"}}
	wrapped := fmt.Errorf("failed to update: %w", err)

	assert.True(t, errors.Is(wrapped, ErrInvalidStructure))
	assert.False(t, errors.Is(wrapped, ErrNotFound))
	assert.False(t, errors.Is(wrapped, ErrIO))
}

func TestError_Message(t *testing.T) {
	err := &Error{Kind: ErrKindStructure, Msg: "bad", Path: "M.plist", KeyPath: []string{"Lockdown", "X"}}
	assert.Equal(t, "bad (M.plist at /Lockdown/X)", err.Error())

	err = &Error{Kind: ErrKindParse, Msg: "malformed", Err: errors.New("eof")}
	assert.Equal(t, "malformed: eof", err.Error())

	err = &Error{Kind: ErrKindStructure, Msg: "bad", KeyPath: []string{"A"}}
	assert.Equal(t, "bad (at /A)", err.Error())

	var nilErr *Error
	assert.Equal(t, "<nil>", nilErr.Error())
}

func TestIOError_ClassifiesNotExist(t *testing.T) {
	_, statErr := os.Stat("/definitely/not/here")
	err := IOError("stat", "/definitely/not/here", statErr)

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	other := IOError("write", "x", fs.ErrPermission)
	assert.True(t, errors.Is(other, ErrIO))
	assert.False(t, errors.Is(other, ErrNotFound))
}

func TestKindOf(t *testing.T) {
	kind, ok := KindOf(fmt.Errorf("ctx: %w", &Error{Kind: ErrKindParse, Msg: "x"}))
	assert.True(t, ok)
	assert.Equal(t, ErrKindParse, kind)

	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestJoinKeyPath(t *testing.T) {
	assert.Equal(t, "/", JoinKeyPath(nil))
	assert.Equal(t, "/Lockdown", JoinKeyPath([]string{"Lockdown"}))
}

func TestErrKind_String(t *testing.T) {
	assert.Equal(t, "invalid structure", ErrKindStructure.String())
	assert.Equal(t, "unknown", ErrKind(42).String())
}
