package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCloseStoreReportsCloseError(t *testing.T) {
	closeErr := errors.New("database is locked")

	run := func(cmdErr error) (err error) {
		defer closeStore(func() error { return closeErr }, &err)
		return cmdErr
	}

	err := run(nil)
	assert.ErrorIs(t, err, closeErr)
	assert.Contains(t, err.Error(), "failed to close settings store")

	// the command error wins
	cmdErr := errors.New("failed to load floor plan")
	assert.Equal(t, cmdErr, run(cmdErr))
}

func TestCloseStoreWithoutError(t *testing.T) {
	closed := false
	run := func() (err error) {
		defer closeStore(func() error { closed = true; return nil }, &err)
		return nil
	}

	assert.NoError(t, run())
	assert.True(t, closed)
}
