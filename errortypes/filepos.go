// Package errortypes defines error types that carry the position of the
// offending marker within a template file.
package errortypes

import "fmt"

// ErrFilePos extends the error interface with the file position at which the
// error was detected.
type ErrFilePos interface {
	error
	File() string
	Line() int
	Col() int
}

// NewErrFilePosf returns an error conforming to the ErrFilePos interface.
func NewErrFilePosf(file string, line, col int, format string, args ...interface{}) error {
	return &errFilePos{
		error: fmt.Errorf(format, args...),
		file:  file,
		line:  line,
		col:   col,
	}
}

// IsErrFilePos reports whether the root cause of err is an ErrFilePos.
// Wrapped errors are unwrapped via the Cause() function.
func IsErrFilePos(err error) bool {
	if err == nil {
		return false
	}
	_, ok := rootCause(err).(ErrFilePos)
	return ok
}

// ToErrFilePos converts err to an ErrFilePos if possible, or nil if not.
// If IsErrFilePos returns true, this will not return nil.
func ToErrFilePos(err error) ErrFilePos {
	if err == nil {
		return nil
	}
	if out, ok := rootCause(err).(ErrFilePos); ok {
		return out
	}
	return nil
}

func rootCause(err error) error {
	type causer interface {
		Cause() error
	}

	for {
		if e, ok := err.(causer); ok {
			err = e.Cause()
		} else {
			return err
		}
	}
}

var _ ErrFilePos = &errFilePos{}

type errFilePos struct {
	error
	file string
	line int
	col  int
}

func (e *errFilePos) File() string {
	return e.file
}

func (e *errFilePos) Line() int {
	return e.line
}

func (e *errFilePos) Col() int {
	return e.col
}
