package durationreporter

import "errors"

var (
	ErrAlreadyBegun     = errors.New("action already begun")
	ErrAlreadyEnded     = errors.New("action already ended")
	ErrNotBegun         = errors.New("action not begun")
	ErrActionInProgress = errors.New("another action with the same name is in progress")
	ErrActionNotFound   = errors.New("no running action found")
)
