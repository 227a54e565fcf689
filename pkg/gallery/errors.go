package gallery

import (
	"errors"
	"fmt"
)

// ErrNotDirectory indicates an input path is missing or not a directory.
var ErrNotDirectory = errors.New("not found or not a directory")

// Directory roles reported by DirError.
const (
	RoleOrg   = "org"
	RoleModel = "model"
)

// DirError represents an invalid input directory.
type DirError struct {
	Role string // "org" or "model"
	Path string
	Err  error
}

func (e *DirError) Error() string {
	return fmt.Sprintf("%s dir %v: %s", e.Role, ErrNotDirectory, e.Path)
}

func (e *DirError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrNotDirectory}
	}
	return []error{ErrNotDirectory, e.Err}
}

// NewDirError creates a new DirError. cause may be nil.
func NewDirError(role, path string, cause error) *DirError {
	return &DirError{
		Role: role,
		Path: path,
		Err:  cause,
	}
}
