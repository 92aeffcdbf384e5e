package classics

import (
	"errors"
)

var (
	ErrIsDir    = errors.New("is a directory")
	ErrConflict = errors.New("conflicting options")
	ErrNoInput  = errors.New("no input given")
)
