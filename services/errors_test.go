package services

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidPathErrorMessage(t *testing.T) {
	err := &InvalidPathError{Path: "in-valid"}
	assert.Equal(t, `cannot access "in-valid": no such file or directory`, err.Error())
}

func TestTagReadErrorMessage(t *testing.T) {
	err := &TagReadError{Path: "broken.mp3", Err: ErrNoTags}
	assert.Contains(t, err.Error(), `attempting to read "broken.mp3" resulted in an error`)
	assert.ErrorIs(t, err, ErrNoTags)
}

func TestReadFaultErrorUnwrap(t *testing.T) {
	err := &ReadFaultError{Path: "dir", Err: io.ErrUnexpectedEOF}
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	assert.Contains(t, err.Error(), `"dir"`)
}
