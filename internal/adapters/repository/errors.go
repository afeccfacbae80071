package repository

import "errors"

// Sentinel kinds for store errors.
var (
	ErrNotFound   = errors.New("record not found")
	ErrOpenStore  = errors.New("open store failed")
	ErrBadInsert  = errors.New("insert rejected")
	ErrQueryStore = errors.New("store query failed")
)
