package model

import "errors"

var (
	ErrInvalidCoordinate  = errors.New("invalid coordinate")
	ErrUninitializedBoard = errors.New("uninitialized board")
	ErrIllegalMove        = errors.New("illegal move")
	ErrInvalidPlacement   = errors.New("invalid placement")

	ErrDuplicateConnection = errors.New("client already connected")
)
