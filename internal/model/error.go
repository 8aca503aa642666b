package model

import "errors"

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrQueryFailed      = errors.New("query failed")
)
